package mock

import (
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db is a file backed sqlite database shared with the server under test.
// The server migrates its own schema; Db only clears and inspects tables.
type Db struct {
	DbConn *gorm.DB
	Path   string
	models map[string]any
}

// NewDb opens a sqlite database file inside dir.
func NewDb(dir string, models map[string]any) (*Db, error) {
	path := filepath.Join(dir, "ledger.db")

	dbConn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return &Db{
		DbConn: dbConn,
		Path:   path,
		models: models,
	}, nil
}

// ClearDB drops every known table so the next server starts from its seed.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int, error) {
	model, ok := d.models[table]
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(model).Elem()))
	if err := d.DbConn.Find(rows.Interface()).Error; err != nil {
		return 0, err
	}
	return rows.Elem().Len(), nil
}

// First loads the row with the given primary key into dest.
func (d *Db) First(dest any, id string) error {
	return d.DbConn.Where("id = ?", id).First(dest).Error
}

func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
