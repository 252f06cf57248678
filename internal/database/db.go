package database

import (
	"fmt"

	"restropos/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *gorm.DB

// InitDB initializes the database connection. Driver is "sqlite3" for a
// single-till install or "postgres" when pointing at a shared server.
func InitDB(driver, source string) error {
	var err error
	DB, err = gorm.Open(driver, source)
	if err != nil {
		return fmt.Errorf("open %s database: %w", driver, err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// Migrate creates and updates all required tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Table{},
		&models.Category{},
		&models.MenuItem{},
		&models.Settings{},
		&models.Counter{},
		&models.User{},
	).Error
}
