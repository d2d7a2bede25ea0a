package repository

import (
	"errors"

	"github.com/clipwave/commission-service/internal/domain"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/mappers"
	"github.com/clipwave/commission-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSaleRepository struct {
	db *gorm.DB
}

func NewDefaultSaleRepository(db *gorm.DB) *DefaultSaleRepository {
	return &DefaultSaleRepository{db: db}
}

// RecordSaleWithSplits commits the sale and its splits in one transaction.
// The unique index on external_sale_id makes the check-then-insert atomic
// under concurrent deliveries: the loser of the race gets a uniqueness
// violation, surfaced as ErrDuplicateSale with nothing written.
func (r *DefaultSaleRepository) RecordSaleWithSplits(sale *domain.SaleRecord, splits []*domain.CommissionSplit) error {
	saleModel := mappers.ToGORMSale(sale)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(saleModel).Error; err != nil {
			return err
		}
		for _, split := range splits {
			split.SaleID = saleModel.ID
			if err := tx.Create(mappers.ToGORMSplit(split)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateSale
		}
		return err
	}
	return nil
}

func (r *DefaultSaleRepository) GetSaleByExternalID(externalSaleID string) (*domain.SaleRecord, error) {
	var saleModel models.SaleModel
	if err := r.db.Where("external_sale_id = ?", externalSaleID).First(&saleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSale(&saleModel), nil
}

func (r *DefaultSaleRepository) GetSaleByID(saleID string) (*domain.SaleRecord, error) {
	var saleModel models.SaleModel
	if err := r.db.Where("id = ?", saleID).First(&saleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSale(&saleModel), nil
}

func (r *DefaultSaleRepository) GetSalesByIDs(saleIDs []string) ([]*domain.SaleRecord, error) {
	if len(saleIDs) == 0 {
		return nil, nil
	}
	var saleModels []models.SaleModel
	if err := r.db.Where("id IN (?)", saleIDs).Find(&saleModels).Error; err != nil {
		return nil, err
	}
	sales := make([]*domain.SaleRecord, len(saleModels))
	for i := range saleModels {
		sales[i] = mappers.ToDomainSale(&saleModels[i])
	}
	return sales, nil
}
