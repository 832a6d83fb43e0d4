package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) SaveBookingMessage(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) ListBookingMessages(ctx context.Context, bookingID int64) ([]domain.ChatMessage, error) {
	var rows []domain.ChatMessage
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&rows)
	return rows, tx.Error
}

func (r *ChatRepository) SaveTurfMessage(ctx context.Context, m *domain.TurfChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListTurfMessages returns the turf room history. Direct messages carry a
// receiver and are only visible to their two parties.
func (r *ChatRepository) ListTurfMessages(ctx context.Context, turfID, viewerID int64) ([]domain.TurfChatMessage, error) {
	var rows []domain.TurfChatMessage
	tx := r.db.WithContext(ctx).
		Where("turf_id = ?", turfID).
		Where("receiver_id IS NULL OR receiver_id = ? OR sender_id = ?", viewerID, viewerID).
		Order("created_at").
		Find(&rows)
	return rows, tx.Error
}
