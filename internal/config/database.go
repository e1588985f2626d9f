package config

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured database. A postgres:// URL uses the
// Postgres driver; anything else is treated as a SQLite DSN, which is the
// default for single-household deployments.
func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseURL), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}
