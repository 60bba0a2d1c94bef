// Package db opens the GORM connection for Postgres or SQLite.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-dashboard/backend/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database owns the connection pool.
type Database struct {
	db *gorm.DB
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return postgres.Open(cfg.URL), nil
	case DriverSQLite:
		return sqlite.Open(cfg.URL), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// NewConnection opens and pings the database selected by cfg.Driver.
// SQLite is limited to one connection so an in-memory database is shared.
func NewConnection(cfg *config.DatabaseConfig) (*Database, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newQueryLogger(cfg.SlowQuery)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	maxOpen, maxIdle := cfg.MaxOpenConns, cfg.MaxIdleConns
	if cfg.Driver == DriverSQLite {
		maxOpen, maxIdle = 1, 1
	}
	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxIdle)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "driver", dialector.Name(), "max_open_conns", maxOpen)
	return &Database{db: db}, nil
}

func (d *Database) DB() *gorm.DB {
	return d.db
}

func (d *Database) Ping(ctx context.Context) error {
	pool, err := d.db.DB()
	if err != nil {
		return err
	}
	return pool.PingContext(ctx)
}

func (d *Database) Close() error {
	pool, err := d.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// AutoMigrate creates or alters the tables of models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// slogWriter sends GORM's log lines to slog at warn level.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	slog.Warn("gorm", "msg", fmt.Sprintf(format, args...))
}

// newQueryLogger reports SQL errors and queries slower than slow. Missing
// records are expected and stay quiet.
func newQueryLogger(slow time.Duration) logger.Interface {
	level := logger.Warn
	if slow <= 0 {
		level = logger.Error
	}
	return logger.New(slogWriter{}, logger.Config{
		SlowThreshold:             slow,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
