package db

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio/internal/config"
)

// Open returns a connected GORM DB instance for the given driver and DSN.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver: %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Connect opens the primary database, falling back to the configured
// fallback store when the primary is unreachable.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err == nil {
		return db, nil
	}

	if cfg.FallbackDatabaseDSN == "" {
		return nil, err
	}

	log.Printf("primary database unreachable (%v), trying fallback %s", err, cfg.FallbackDBDriver)
	db, fallbackErr := Open(cfg.FallbackDBDriver, cfg.FallbackDatabaseDSN)
	if fallbackErr != nil {
		return nil, fmt.Errorf("primary: %v, fallback: %w", err, fallbackErr)
	}
	return db, nil
}
