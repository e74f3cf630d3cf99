// Package db wires the gorm persistence layer: reference-data seed rows and
// per-request calculation audit records. The dosage engine itself never
// touches the database.
package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"aromadose/internal/config"
	"aromadose/internal/dosage"
	"aromadose/models"
)

var DB *gorm.DB

// Initialize opens the configured database: postgres when a URL is provided,
// a local sqlite file otherwise.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var dialector gorm.Dialector
	if strings.TrimSpace(cfg.URL) != "" {
		dialector = postgres.Open(cfg.URL)
	} else {
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			return nil, fmt.Errorf("database path must not be empty")
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

// AutoMigrate creates or updates the persistence schema.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	return db.AutoMigrate(
		&models.ReferenceEntry{},
		&models.CalculationRecord{},
	)
}

// SeedReferenceData inserts the static toxicological tables as inspectable
// rows. Seeding is idempotent: it only runs against an empty table.
func SeedReferenceData(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	var count int64
	if err := db.Model(&models.ReferenceEntry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count reference entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	reference := dosage.ReferenceData()
	var entries []models.ReferenceEntry

	for name, value := range reference.NOAEL {
		entries = append(entries, models.ReferenceEntry{
			Constituent: name,
			Kind:        models.ReferenceKindNOAEL,
			Value:       value,
			Unit:        "mg/kg/j",
			Source:      "Tisserand & Young - Essential Oil Safety 2nd Ed.",
		})
	}
	for name, value := range reference.IFRALimits {
		entries = append(entries, models.ReferenceEntry{
			Constituent: name,
			Kind:        models.ReferenceKindIFRA,
			Value:       value,
			Unit:        "%",
			Source:      "IFRA Standards 49th Amendment (2020)",
		})
	}
	for name, value := range reference.CIRLimits {
		entries = append(entries, models.ReferenceEntry{
			Constituent: name,
			Kind:        models.ReferenceKindCIR,
			Value:       value,
			Unit:        "%",
			Source:      "CIR safety assessments",
		})
	}

	if err := db.Create(&entries).Error; err != nil {
		return fmt.Errorf("seed reference entries: %w", err)
	}
	return nil
}

// Configure opens, migrates and seeds the database, then installs the shared
// handle.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := SeedReferenceData(database); err != nil {
		return nil, err
	}

	DB = database

	return database, nil
}

// Get returns the shared database handle, which may be nil when persistence
// is disabled.
func Get() *gorm.DB {
	return DB
}
