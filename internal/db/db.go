package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hometeam/chores-back/internal/models"
)

// Connect opens the Postgres database and runs migrations. The handle is
// returned to the caller instead of living in a package global so every
// operation receives its data access explicitly.
func Connect(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated")
	return gdb, nil
}

// Migrate creates or updates the four tables. Split out so tests can run
// it against their own database.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Schedule{},
		&models.Task{},
		&models.Assignment{},
	)
	if err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}
