package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type TurfRepository struct {
	db *gorm.DB
}

func NewTurfRepository(db *gorm.DB) *TurfRepository {
	return &TurfRepository{db: db}
}

func (r *TurfRepository) Create(ctx context.Context, t *domain.Turf) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TurfRepository) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	var t domain.Turf
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TurfRepository) List(ctx context.Context) ([]domain.Turf, error) {
	var rows []domain.Turf
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	return rows, tx.Error
}

func (r *TurfRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Turf, error) {
	var rows []domain.Turf
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&rows)
	return rows, tx.Error
}

func (r *TurfRepository) Update(ctx context.Context, t *domain.Turf) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TurfRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Turf{}, id).Error
}
