package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	var rows []domain.Notification
	q := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	tx := q.Order("created_at DESC").Find(&rows)
	return rows, tx.Error
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&cnt).Error
	return cnt, err
}

// MarkRead flips a single notification owned by the recipient.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	return tx.RowsAffected > 0, tx.Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
