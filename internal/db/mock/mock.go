// Package mock provides an in-memory seeded database for tests.
package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appdb "aromadose/internal/db"
	applog "aromadose/internal/log"
	"aromadose/models"
)

// New returns an in-memory sqlite database migrated and seeded with the
// reference dataset.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:aromadose-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.ReferenceEntry{},
		&models.CalculationRecord{},
	); err != nil {
		return nil, err
	}

	if err := appdb.SeedReferenceData(db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}
