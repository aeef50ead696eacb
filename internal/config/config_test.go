package config

import (
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if c.Port != "8080" || c.StorageDriver != "file" || c.ExportEnabled {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("EXPORT_ENABLED", "true")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if c.Port != "3000" || c.StorageDriver != "sqlite" || c.SQLitePath != "/tmp/x.db" || !c.ExportEnabled {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromEnvErrors(t *testing.T) {
	t.Setenv("EXPORT_ENABLED", "maybe")
	if _, err := FromEnv(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("EXPORT_ENABLED", "false")
	t.Setenv("STORAGE_DRIVER", "postgres")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
