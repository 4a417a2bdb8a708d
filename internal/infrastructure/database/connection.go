package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/internal/infrastructure/config"
)

// NewConnection opens the catalog database described by cfg
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case config.DatabaseTypePostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DatabaseTypeSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}

	switch cfg.Type {
	case config.DatabaseTypePostgres:
		sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
		sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
		sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	case config.DatabaseTypeSQLite:
		// every pooled connection to :memory: would open a separate database
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// NewTestConnection creates an in-memory SQLite database for testing
func NewTestConnection() (*gorm.DB, error) {
	cfg := &config.DatabaseConfig{
		Type: config.DatabaseTypeSQLite,
		Path: config.SQLiteMemoryPath,
	}

	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the catalog and price tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistence.ItemModel{},
		&persistence.RecipeModel{},
		&persistence.RecipeInputModel{},
		&persistence.RecipeOutputModel{},
		&persistence.BuildingModel{},
		&persistence.BuildingCostModel{},
		&persistence.PlanetModel{},
		&persistence.PlanetResourceModel{},
		&persistence.ExchangePriceModel{},
		&persistence.WorkforceNeedModel{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
