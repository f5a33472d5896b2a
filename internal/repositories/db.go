// Package repositories provides the data access layer: the read-only
// venue/profile directory the payload builders draw from, and the redis
// render cache.
package repositories

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pianostyle/internal/config"
	"pianostyle/internal/models"
)

// DB is the shared database handle.
var DB *gorm.DB

// InitDB opens the postgres connection and migrates the directory tables.
func InitDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&models.Venue{}, &models.Profile{}); err != nil {
		return fmt.Errorf("migrate directory schema: %w", err)
	}

	DB = db
	return nil
}

// CloseDB releases the underlying connection pool.
func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
