package db

import (
	"os"

	"github.com/glebarez/sqlite"
	"github.com/wellnest-dev/wellnest/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const defaultSQLitePath = "wellnest.db"

// ConnectDatabase opens the store. DATABASE_URL selects Postgres;
// otherwise a file-backed sqlite database is used (SQLITE_PATH overrides
// the default location).
func ConnectDatabase() error {
	var err error

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")

		if path == "" {
			path = defaultSQLitePath
		}

		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	return err
}

// MigrateDatabase creates any missing tables. Safe to call on every start.
func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.DailyHealthRecord{},
		&models.JournalEntry{},
		&models.Appointment{},
		&models.Meal{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
