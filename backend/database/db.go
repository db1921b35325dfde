package database

import (
	"crew-agent-api/backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the SQLite database and migrates the schema. The default path is
// ":memory:", which means the conversation log lives exactly as long as the
// process. SQLite allows a single writer, so the pool is capped at one open
// connection; the shared-cache DSN keeps every pooled connection on the same
// in-memory database.
func Init(path string) error {
	dsn := path
	if dsn == ":memory:" {
		dsn = "file::memory:?cache=shared"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	return DB.AutoMigrate(&models.User{}, &models.LogEntry{}, &models.ConversationEntry{})
}
