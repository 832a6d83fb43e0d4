package booking

import (
	"context"
	"time"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetails(ctx context.Context, bookingID int64) (*repository.BookingDetails, error)
	GetTurfOwnerForBooking(ctx context.Context, bookingID int64) (ownerID int64, status string, err error)
	HasConfirmedConflict(ctx context.Context, turfID int64, slotID *int64, date time.Time, excludeID int64) (bool, error)
	Approve(ctx context.Context, bookingID int64, approvedAt time.Time) (bool, error)
	RejectIfPending(ctx context.Context, bookingID int64) (bool, error)
	CancelIfNotConfirmed(ctx context.Context, bookingID int64) (bool, error)
	FinalizeSuccess(ctx context.Context, bookingID int64) (bool, error)
	FinalizeFailure(ctx context.Context, bookingID int64) (bool, error)
	ExpireIfUnpaid(ctx context.Context, bookingID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListPendingForOwner(ctx context.Context, ownerID int64) ([]repository.OwnerBookingRow, error)
	OwnerSummary(ctx context.Context, ownerID int64, from, to time.Time) ([]repository.OwnerBookingRow, float64, error)
	ListAwaitingPayment(ctx context.Context) ([]domain.Booking, error)
}

type TurfReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

type SlotReader interface {
	GetByID(ctx context.Context, id int64) (*domain.TurfSlot, error)
}

// NotificationSender records in-app notifications for lifecycle events.
// Implementations must never fail the booking flow; errors are logged and
// dropped upstream.
type NotificationSender interface {
	NotifyBookingRequested(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error
	NotifyBookingApproved(ctx context.Context, playerID, bookingID int64, turfName string, advance float64) error
	NotifyBookingRejected(ctx context.Context, playerID, bookingID int64, turfName, reason string) error
	NotifyBookingConfirmed(ctx context.Context, playerID, bookingID int64, turfName string) error
	NotifyBookingCancelled(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error
}

type Mailer interface {
	BookingApproved(to, turfName string, advance float64, window time.Duration)
	BookingConfirmed(to, turfName string)
	BookingRejected(to, turfName, reason string)
}

// DeadlineScheduler arms and disarms the payment-window timer.
type DeadlineScheduler interface {
	Schedule(ctx context.Context, bookingID int64, fireAt time.Time) error
	Cancel(ctx context.Context, bookingID int64)
}
