package database

import (
	"fmt"
	"time"

	"kbikes-api/internal/errs"
	"kbikes-api/internal/model"
	"kbikes-api/pkg/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB(cfg *config.Config, log *zap.Logger) error {
	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Configure GORM and open connection
	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return &errs.ConnectivityError{Err: err}
	}

	// Configure connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return &errs.ConnectivityError{Err: err}
	}
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	// Run migrations for the dealership schema
	start := time.Now()
	log.Info("Starting database migration...")

	if err := Migrate(db); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return err
	}

	log.Info("Database migration completed successfully",
		zap.Duration("duration", time.Since(start)))

	return nil
}

// Migrate creates or updates the tables for all dealership entities
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Branch{},
		&model.Supplier{},
		&model.Customer{},
		&model.Employee{},
		&model.Product{},
		&model.Sale{},
	); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

// GetDB returns a reference to the database instance
func GetDB() *gorm.DB {
	return db
}
