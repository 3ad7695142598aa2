package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// DB is the target database written by the migration engine.
var DB *gorm.DB

// File is the path of the sqlite file backing DB. It is streamed back to
// the client as the snapshot artifact after a successful run.
var File string

// Connect connects to the target database and ensures the schema exists.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Wallet{}, Category{}, Transaction{}, AssociatedTitle{})
	if err != nil {
		return err
	}

	DB = db

	// The DSN may carry sqlite pragmas, the file path is everything before them
	File = strings.SplitN(dsn, "?", 2)[0]

	return nil
}
