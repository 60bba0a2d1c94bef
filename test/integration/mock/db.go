package mock

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

var once sync.Once
var database *Db

// Db is a shared in-memory SQLite database migrated with every persistence model.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	models   []any
}

// NewDb opens the database once per test binary and migrates the schema.
func NewDb(name string) *Db {
	once.Do(func() {
		database = open(name)
	})
	return database
}

func open(name string) *Db {
	conn, err := db.NewConnection(&config.DatabaseConfig{
		Driver:          db.DriverSQLite,
		URL:             fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := model.All()
	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		Database: conn,
		DbConn:   conn.DB(),
		models:   models,
	}
}

// ClearDB deletes every row, children first.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.models[i]).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", d.models[i], err)
		}
	}
	return nil
}

// Count returns the number of live rows in table matching the optional where map.
// Soft deleted rows are not counted.
func (d *Db) Count(table string, where map[string]any) (int64, error) {
	var count int64
	q := d.DbConn.Table(table)
	if d.DbConn.Migrator().HasColumn(table, "deleted_at") {
		q = q.Where("deleted_at IS NULL")
	}
	if len(where) > 0 {
		q = q.Where(where)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
