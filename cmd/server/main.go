package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/wingscore/internal/config"
	"github.com/kiliankoe/wingscore/internal/game"
	"github.com/kiliankoe/wingscore/internal/history"
	"github.com/kiliankoe/wingscore/internal/httpapi"
	"github.com/kiliankoe/wingscore/internal/storage"
	"github.com/kiliankoe/wingscore/internal/storage/sqlite"
	"github.com/kiliankoe/wingscore/internal/ws"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
)

const version = "v1.0.0"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`wingscore - Wingspan score keeper

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables:
  PORT             Port to listen on (default: 8080)
  STORAGE_DRIVER   "file" or "sqlite" (default: file)
  DATA_DIR         Directory for the file driver (default: ./data)
  SQLITE_PATH      Database path for the sqlite driver (default: ./data/wingscore.db)
  EXPORT_ENABLED   Append finished games to a text file (default: false)
  EXPORT_FILE      Path for exported results (default: ./wingscore-results.txt)
  LOG_LEVEL        zerolog level (default: info)
`, os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("wingscore %s\n", version)
		return
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg, err := config.FromEnv()
	if err != nil {
		zerologlog.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if *portFlag != "" {
		cfg.Port = *portFlag
	}
	logger := zerologlog.Logger

	var provider storage.Provider
	switch cfg.StorageDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("open sqlite storage")
		}
		defer db.Close()
		provider = db
	default:
		f, err := storage.OpenFile(cfg.DataDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("open file storage")
		}
		provider = f
	}

	store := game.NewStore(logger)
	archive := history.Open(provider, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpapi.Logger(logger))

	api := httpapi.New(store, archive, logger)
	if cfg.ExportEnabled {
		api.ExportFile = cfg.ExportFile
	}
	api.Mount(r)

	sock := ws.New(store, archive, logger)
	io := sock.Mount(r)
	defer io.Close()
	defer sock.Close()

	logger.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("listening")
	if err := r.Run("127.0.0.1:" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
