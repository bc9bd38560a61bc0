package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

const defaultDBPath = "data.db"

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func setupLogging(c map[string]string, out io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.GetString(c, "LOG_FORMAT", "console") == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !config.GetBool(c, "LOG_COLOR", true)}).
		With().Timestamp().Logger()
}

// gormLogLevel echoes SQL only when the app itself runs at debug.
func gormLogLevel() logger.LogLevel {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		return logger.Info
	}
	return logger.Warn
}

func openDatabase(ctx context.Context, c map[string]string) (database.Database, *gorm.DB, error) {
	path := config.GetString(c, "DB_PATH", defaultDBPath)

	db, err := database.Open(ctx, database.Options{
		Path:        path,
		BusyTimeout: time.Duration(config.GetInt(c, "DB_BUSY_TIMEOUT_MS", 5000)) * time.Millisecond,
		LogLevel:    gormLogLevel(),
	})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Error connecting to database")
		return database.Database{}, nil, err
	}

	return database.New(db), db, nil
}
