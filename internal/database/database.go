package database

import (
	"fmt"
	"time"

	"aircraft-production-backend/internal/catalog"
	"aircraft-production-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipAutoMigrate leaves the schema untouched; migration runs by default.
	SkipAutoMigrate bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// AutoMigrate all models. Teams and personnel come before parts and
	// aircraft so foreign keys resolve in one pass.
	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.Team{},
			&models.Personnel{},
			&models.PartType{},
			&models.AircraftModel{},
			&models.WorkOrder{},
			&models.Part{},
			&models.Aircraft{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Seed inserts the reference rows the catalog defines. Safe to run on
// every startup; existing rows are left untouched.
func Seed(db *gorm.DB, cat *catalog.Catalog) error {
	for _, category := range catalog.SlotCategories {
		pt := models.PartType{Category: category}
		if err := db.Where("category = ?", category).FirstOrCreate(&pt).Error; err != nil {
			return fmt.Errorf("seed part type %s: %w", category, err)
		}
	}
	for _, name := range cat.AircraftModels {
		am := models.AircraftModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&am).Error; err != nil {
			return fmt.Errorf("seed aircraft model %s: %w", name, err)
		}
	}
	return nil
}
