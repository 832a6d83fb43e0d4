package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeedbackRepository) Exists(ctx context.Context, userID, turfID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("user_id = ? AND turf_id = ?", userID, turfID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *FeedbackRepository) ListByTurf(ctx context.Context, turfID int64) ([]domain.Feedback, error) {
	var rows []domain.Feedback
	tx := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Order("created_at DESC").
		Find(&rows)
	return rows, tx.Error
}

func (r *FeedbackRepository) AverageRating(ctx context.Context, turfID int64) (float64, int64, error) {
	type agg struct {
		Avg float64 `gorm:"column:avg_rating"`
		Cnt int64   `gorm:"column:cnt"`
	}
	var out agg
	err := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS cnt").
		Where("turf_id = ?", turfID).
		Scan(&out).Error
	return out.Avg, out.Cnt, err
}
