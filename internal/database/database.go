package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: NewLogger(cfg.LogSQL)})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("database connected")
	return db, nil
}

// NewLogger returns a gorm logger that stays quiet unless SQL logging is enabled.
func NewLogger(logSQL bool) logger.Interface {
	level := logger.Silent
	if logSQL {
		level = logger.Info
	}
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Println("database migrated")
	return nil
}
