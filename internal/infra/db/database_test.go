package db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

func TestNewConnectionSQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    "file::memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.AutoMigrate(model.All()...))
	assert.NoError(t, database.Ping(context.Background()))
	assert.True(t, database.DB().Migrator().HasTable(&model.ExpenseModel{}))
}

func TestNewConnectionUnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSlowQueriesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	database, err := NewConnection(&config.DatabaseConfig{
		Driver:    DriverSQLite,
		URL:       "file::memory:",
		SlowQuery: time.Nanosecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	var one int
	require.NoError(t, database.DB().Raw("SELECT 1").Scan(&one).Error)
	assert.Contains(t, buf.String(), "SLOW SQL")
}
