package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"` // file | sqlite
	DataDir       string `env:"DATA_DIR" envDefault:"./data"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"./data/wingscore.db"`
	ExportEnabled bool   `env:"EXPORT_ENABLED" envDefault:"false"`
	ExportFile    string `env:"EXPORT_FILE" envDefault:"./wingscore-results.txt"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// FromEnv loads the configuration from environment variables.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch c.StorageDriver {
	case "file", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	return c, nil
}
