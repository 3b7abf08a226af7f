package infra

import (
	"fmt"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// catalog schema. The schema is read-mostly: the only mutation path in this
// service is variant override maintenance.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the catalog tables. Also used by
// integration setups that bring their own *gorm.DB.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.Variant{},
		&model.VariantOverride{},
		&model.Hub{},
		&model.DistributionCycle{},
		&model.Exchange{},
		&model.Supplier{},
		&model.SupplierProperty{},
		&model.Customer{},
		&model.TagRule{},
	)
}
