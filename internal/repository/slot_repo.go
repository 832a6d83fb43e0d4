package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.TurfSlot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.TurfSlot, error) {
	var s domain.TurfSlot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) ListByTurf(ctx context.Context, turfID int64, activeOnly bool) ([]domain.TurfSlot, error) {
	var rows []domain.TurfSlot
	q := r.db.WithContext(ctx).Where("turf_id = ?", turfID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	tx := q.Order("start_time").Find(&rows)
	return rows, tx.Error
}

// WindowExists detects a duplicate recurring window on the turf.
func (r *SlotRepository) WindowExists(ctx context.Context, turfID int64, start, end string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.TurfSlot{}).
		Where("turf_id = ? AND start_time = ? AND end_time = ?", turfID, start, end).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *SlotRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.TurfSlot{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.TurfSlot{}, id).Error
}
