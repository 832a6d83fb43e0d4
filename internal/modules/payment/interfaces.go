package payment

import (
	"context"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	ReplacePending(ctx context.Context, bookingID int64) error
	MarkSuccess(ctx context.Context, paymentID int64, razorpayPaymentID, signature string) (bool, error)
	RevokeSuccess(ctx context.Context, paymentID int64) (bool, error)
	MarkFailed(ctx context.Context, paymentID int64) (bool, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// BookingFinalizer resolves the booking once the gateway outcome is known.
type BookingFinalizer interface {
	ConfirmPaid(ctx context.Context, bookingID int64) (bool, error)
	MarkPaymentFailed(ctx context.Context, bookingID int64) (bool, error)
}

type Gateway interface {
	CreateOrder(amountPaise int, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
