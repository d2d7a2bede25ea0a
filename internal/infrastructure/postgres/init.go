package postgres

import (
	"log"

	"github.com/clipwave/commission-service/internal/config"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CommissionConfig) *gorm.DB {
	dsn := cfg.CommissionDB.Dsn
	// TranslateError maps the driver's unique-violation onto
	// gorm.ErrDuplicatedKey, which the ledger's idempotency check relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.SaleModel{},
		&models.CommissionSplitModel{},
		&models.AssignmentModel{},
		&models.PayoutModel{},
		&models.ApplicationModel{},
	)

	return db
}
