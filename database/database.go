package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Ping checks that the underlying connection is still usable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseConnectionError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseConnectionError(err)
	}
	return nil
}

// Close releases the connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Options configures Open.
type Options struct {
	Path        string
	BusyTimeout time.Duration
	// NowFunc stamps created_at/updated_at. Defaults to time.Now in UTC.
	NowFunc  func() time.Time
	LogLevel logger.LogLevel
}

// Open connects to the SQLite file at opts.Path.
func Open(ctx context.Context, opts Options) (*gorm.DB, error) {
	if opts.Path == "" {
		return nil, errs.NewEnvironmentVariableError("DB_PATH")
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = 5 * time.Second
	}
	if opts.NowFunc == nil {
		opts.NowFunc = func() time.Time { return time.Now().UTC() }
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	newLogger := logger.New(
		gormWriter{log.With().Str("component", "gorm").Logger()},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", opts.Path, opts.BusyTimeout.Milliseconds())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 newLogger,
		NowFunc:                opts.NowFunc,
		TranslateError:         true,
		SkipDefaultTransaction: true, // single-statement writes
	})
	if err != nil {
		return nil, errs.NewDatabaseConnectionError(err)
	}

	// Test database connection
	var result int
	if err := db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error; err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, errs.NewDatabaseConnectionError(err)
	}

	return db, nil
}

// gormWriter routes gorm's log lines to zerolog. gorm only writes when a
// line passes its own level filter, so everything is logged at warn.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn().Msgf(format, args...)
}
