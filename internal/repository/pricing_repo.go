package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

func (r *PricingRepository) GetByTurf(ctx context.Context, turfID int64) (*domain.DynamicPricing, error) {
	var p domain.DynamicPricing
	if err := r.db.WithContext(ctx).Where("turf_id = ?", turfID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates or replaces the turf's pricing row.
func (r *PricingRepository) Upsert(ctx context.Context, p *domain.DynamicPricing) error {
	var existing domain.DynamicPricing
	err := r.db.WithContext(ctx).Where("turf_id = ?", p.TurfID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.WithContext(ctx).Create(p).Error
		}
		return err
	}
	p.ID = existing.ID
	return r.db.WithContext(ctx).Save(p).Error
}
