package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// HasConfirmedConflict reports whether a confirmed booking already occupies
// the given (turf, slot, date), excluding excludeID. This is the only blocker
// the availability rules recognise: pending and confirm_after_payment
// siblings never block.
func (r *BookingRepository) HasConfirmedConflict(ctx context.Context, turfID int64, slotID *int64, date time.Time, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("turf_id = ?", turfID).
		Where("date = ?", domain.DateOnly(date)).
		Where("booking_status = ?", domain.BookingConfirmed)
	if slotID != nil {
		q = q.Where("slot_id = ?", *slotID)
	} else {
		q = q.Where("slot_id IS NULL")
	}
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GetTurfOwnerForBooking returns the owning user of the booking's turf along
// with the current booking status.
func (r *BookingRepository) GetTurfOwnerForBooking(ctx context.Context, bookingID int64) (int64, string, error) {
	type row struct {
		OwnerID int64  `gorm:"column:owner_id"`
		Status  string `gorm:"column:booking_status"`
	}
	var out row
	q := `
SELECT t.owner_id, b.booking_status
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&out)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, "", gorm.ErrRecordNotFound
	}
	return out.OwnerID, out.Status, nil
}

// BookingDetails carries the joined fields notifications and emails need.
type BookingDetails struct {
	ID            int64     `gorm:"column:id"`
	UserID        int64     `gorm:"column:user_id"`
	UserName      string    `gorm:"column:user_name"`
	UserEmail     string    `gorm:"column:user_email"`
	TurfID        int64     `gorm:"column:turf_id"`
	TurfName      string    `gorm:"column:turf_name"`
	OwnerID       int64     `gorm:"column:owner_id"`
	Date          time.Time `gorm:"column:date"`
	StartTime     string    `gorm:"column:start_time"`
	EndTime       string    `gorm:"column:end_time"`
	TotalPrice    float64   `gorm:"column:total_price"`
	BookingStatus string    `gorm:"column:booking_status"`
	PaymentStatus string    `gorm:"column:payment_status"`
}

func (r *BookingRepository) GetDetails(ctx context.Context, bookingID int64) (*BookingDetails, error) {
	var row BookingDetails
	q := `
SELECT
  b.id,
  b.user_id,
  u.name  AS user_name,
  u.email AS user_email,
  b.turf_id,
  t.name  AS turf_name,
  t.owner_id,
  b.date,
  b.start_time,
  b.end_time,
  b.total_price,
  b.booking_status,
  b.payment_status
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN users u ON u.id = b.user_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Approve moves a pending booking to confirm_after_payment, anchoring the
// payment window at approvedAt. The update is conditioned on the current
// state so two racing approvals resolve to a single winner.
func (r *BookingRepository) Approve(ctx context.Context, bookingID int64, approvedAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND booking_status = ?", bookingID, domain.BookingPending).
		Updates(map[string]any{
			"booking_status": domain.BookingConfirmAfterPayment,
			"payment_status": domain.PaymentPending,
			"approved_at":    approvedAt,
			"updated_at":     time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *BookingRepository) RejectIfPending(ctx context.Context, bookingID int64) (bool, error) {
	return r.transitionIf(ctx, bookingID, []domain.BookingStatus{domain.BookingPending}, map[string]any{
		"booking_status": domain.BookingRejected,
	})
}

// CancelIfNotConfirmed cancels from any non-terminal state except confirmed.
func (r *BookingRepository) CancelIfNotConfirmed(ctx context.Context, bookingID int64) (bool, error) {
	return r.transitionIf(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingPending, domain.BookingConfirmAfterPayment, domain.BookingRejected},
		map[string]any{"booking_status": domain.BookingCancelled})
}

func (r *BookingRepository) FinalizeSuccess(ctx context.Context, bookingID int64) (bool, error) {
	return r.transitionIf(ctx, bookingID, []domain.BookingStatus{domain.BookingConfirmAfterPayment}, map[string]any{
		"booking_status": domain.BookingConfirmed,
		"payment_status": domain.PaymentPaid,
	})
}

func (r *BookingRepository) FinalizeFailure(ctx context.Context, bookingID int64) (bool, error) {
	return r.transitionIf(ctx, bookingID, []domain.BookingStatus{domain.BookingConfirmAfterPayment}, map[string]any{
		"booking_status": domain.BookingRejected,
		"payment_status": domain.PaymentFailed,
	})
}

// ExpireIfUnpaid is the fire-time check of the payment-window timer: the
// booking is rejected only if it is still awaiting payment.
func (r *BookingRepository) ExpireIfUnpaid(ctx context.Context, bookingID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND booking_status = ? AND payment_status <> ?",
			bookingID, domain.BookingConfirmAfterPayment, domain.PaymentPaid).
		Updates(map[string]any{
			"booking_status": domain.BookingRejected,
			"updated_at":     time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *BookingRepository) transitionIf(ctx context.Context, bookingID int64, from []domain.BookingStatus, updates map[string]any) (bool, error) {
	updates["updated_at"] = time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND booking_status IN ?", bookingID, from).
		Updates(updates)
	return tx.RowsAffected > 0, tx.Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	return rows, tx.Error
}

// OwnerBookingRow is the projection used by the owner request list and the
// income summary.
type OwnerBookingRow struct {
	ID            int64     `gorm:"column:id" json:"id"`
	TurfID        int64     `gorm:"column:turf_id" json:"turf_id"`
	TurfName      string    `gorm:"column:turf_name" json:"turf_name"`
	UserID        int64     `gorm:"column:user_id" json:"user_id"`
	UserName      string    `gorm:"column:user_name" json:"user_name"`
	Date          time.Time `gorm:"column:date" json:"date"`
	StartTime     string    `gorm:"column:start_time" json:"start_time"`
	EndTime       string    `gorm:"column:end_time" json:"end_time"`
	TotalPrice    float64   `gorm:"column:total_price" json:"total_price"`
	BookingStatus string    `gorm:"column:booking_status" json:"booking_status"`
	PaymentStatus string    `gorm:"column:payment_status" json:"payment_status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (r *BookingRepository) ListPendingForOwner(ctx context.Context, ownerID int64) ([]OwnerBookingRow, error) {
	var rows []OwnerBookingRow
	q := `
SELECT
  b.id, b.turf_id, t.name AS turf_name,
  b.user_id, u.name AS user_name,
  b.date, b.start_time, b.end_time,
  b.total_price, b.booking_status, b.payment_status, b.created_at
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN users u ON u.id = b.user_id
WHERE t.owner_id = ? AND b.booking_status = 'pending'
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID).Scan(&rows)
	return rows, tx.Error
}

// OwnerSummary returns the confirmed, paid bookings for the owner's turfs in
// the inclusive [from, to] date range together with the summed income.
func (r *BookingRepository) OwnerSummary(ctx context.Context, ownerID int64, from, to time.Time) ([]OwnerBookingRow, float64, error) {
	var rows []OwnerBookingRow
	q := `
SELECT
  b.id, b.turf_id, t.name AS turf_name,
  b.user_id, u.name AS user_name,
  b.date, b.start_time, b.end_time,
  b.total_price, b.booking_status, b.payment_status, b.created_at
FROM bookings b
JOIN turfs t ON t.id = b.turf_id
JOIN users u ON u.id = b.user_id
WHERE t.owner_id = ?
  AND b.booking_status = 'confirmed'
  AND b.payment_status = 'paid'
  AND b.date >= ? AND b.date <= ?
ORDER BY b.date DESC
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, domain.DateOnly(from), domain.DateOnly(to)).Scan(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	var total float64
	for _, row := range rows {
		total += row.TotalPrice
	}
	return rows, total, nil
}

// SlotHasFutureBookings guards slot deletion: any non-cancelled booking on
// the slot dated today or later blocks it.
func (r *BookingRepository) SlotHasFutureBookings(ctx context.Context, slotID int64, today time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("slot_id = ?", slotID).
		Where("date >= ?", domain.DateOnly(today)).
		Where("booking_status <> ?", domain.BookingCancelled).
		Count(&cnt).Error
	return cnt > 0, err
}

// HasPaidConfirmedBooking reports whether the user ever completed a paid,
// confirmed booking on the turf. Feedback posting is gated on this.
func (r *BookingRepository) HasPaidConfirmedBooking(ctx context.Context, userID, turfID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("user_id = ? AND turf_id = ?", userID, turfID).
		Where("booking_status = ? AND payment_status = ?", domain.BookingConfirmed, domain.PaymentPaid).
		Count(&cnt).Error
	return cnt > 0, err
}

// ListAwaitingPayment returns bookings stuck in confirm_after_payment, used
// by the startup sweep to re-arm or expire payment-window timers.
func (r *BookingRepository) ListAwaitingPayment(ctx context.Context) ([]domain.Booking, error) {
	var rows []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("booking_status = ?", domain.BookingConfirmAfterPayment).
		Order("approved_at").
		Find(&rows)
	return rows, tx.Error
}
