package config

import (
	"os"
	"storepos-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the local SQLite file that backs the persistent store
// and migrates the key-value table. DB_PATH defaults to store.db next to
// the binary.
func ConnectDB() (*gorm.DB, error) {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "store.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		return nil, err
	}

	return db, nil
}
