package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("razorpay_order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplacePending deletes any non-terminal payment row for the booking so a
// fresh gateway order can be issued. Terminal rows (success, failed) stay.
func (r *PaymentRepository) ReplacePending(ctx context.Context, bookingID int64) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, domain.TxnPending).
		Delete(&domain.Payment{}).Error
}

// MarkSuccess finishes the payment once. The state condition makes a second
// verification of the same order a no-op.
func (r *PaymentRepository) MarkSuccess(ctx context.Context, paymentID int64, razorpayPaymentID, signature string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND status = ?", paymentID, domain.TxnPending).
		Updates(map[string]any{
			"status":              domain.TxnSuccess,
			"razorpay_payment_id": razorpayPaymentID,
			"razorpay_signature":  signature,
			"updated_at":          time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

// RevokeSuccess demotes a success back to failed. Used when the booking was
// rejected before the payment landed, so the two records cannot disagree.
func (r *PaymentRepository) RevokeSuccess(ctx context.Context, paymentID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND status = ?", paymentID, domain.TxnSuccess).
		Updates(map[string]any{
			"status":     domain.TxnFailed,
			"updated_at": time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, paymentID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ? AND status = ?", paymentID, domain.TxnPending).
		Updates(map[string]any{
			"status":     domain.TxnFailed,
			"updated_at": time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}
