package payment

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

const currency = "INR"

type Service struct {
	payments PaymentRepository
	bookings BookingReader
	outcomes BookingFinalizer
	gateway  Gateway
	keyID    string
}

func NewService(payments PaymentRepository, bookings BookingReader, outcomes BookingFinalizer, gateway Gateway, keyID string) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		outcomes: outcomes,
		gateway:  gateway,
		keyID:    keyID,
	}
}

// CreateSession opens a gateway order for the booking's advance (half the
// total). A booking still inside the payment window, or confirmed but not
// yet paid, may open a session; a stale pending session is replaced so
// retrying the checkout always works.
func (s *Service) CreateSession(ctx context.Context, actorID, bookingID int64) (*SessionResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if b.BookingStatus != domain.BookingConfirmAfterPayment && b.BookingStatus != domain.BookingConfirmed {
		return nil, ErrInvalidState
	}

	advance := b.TotalPrice / 2
	amountPaise := int(math.Round(advance * 100))

	if err := s.payments.ReplacePending(ctx, bookingID); err != nil {
		return nil, err
	}

	// A gateway outage must not consume the player's payment window. The
	// booking stays as-is so the checkout can be retried; abandonment is
	// the expiry timer's job.
	orderID, err := s.gateway.CreateOrder(amountPaise, currency, fmt.Sprintf("booking_%d", bookingID))
	if err != nil {
		log.Printf("payment: order create failed for booking %d: %v", bookingID, err)
		return nil, ErrGateway
	}

	p := &domain.Payment{
		BookingID:       bookingID,
		TransactionID:   uuid.NewString(),
		Amount:          advance,
		Method:          "razorpay",
		Status:          domain.TxnPending,
		RazorpayOrderID: orderID,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &SessionResponse{
		BookingID:     bookingID,
		OrderID:       orderID,
		TransactionID: p.TransactionID,
		Amount:        advance,
		AmountPaise:   amountPaise,
		Currency:      currency,
		KeyID:         s.keyID,
	}, nil
}

// Verify checks the checkout callback signature and settles the payment. A
// repeat verification of an already settled order returns the settled state
// instead of failing.
func (s *Service) Verify(ctx context.Context, actorID int64, req VerifyRequest) (*PaymentPayload, error) {
	p, err := s.payments.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		if _, err := s.payments.MarkFailed(ctx, p.ID); err != nil {
			log.Printf("payment: mark failed errored for payment %d: %v", p.ID, err)
		}
		if _, err := s.outcomes.MarkPaymentFailed(ctx, p.BookingID); err != nil {
			log.Printf("payment: booking downgrade errored for booking %d: %v", p.BookingID, err)
		}
		return nil, ErrSignature
	}

	ok, err := s.payments.MarkSuccess(ctx, p.ID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Already settled. Success is idempotent, a failed payment stays
		// failed.
		current, err := s.payments.GetByBookingID(ctx, p.BookingID)
		if err != nil {
			return nil, err
		}
		if current.Status != domain.TxnSuccess {
			return nil, ErrInvalidState
		}
		return toPaymentPayload(current), nil
	}

	confirmed, err := s.outcomes.ConfirmPaid(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		// The expiry timer won the race and the booking is already
		// rejected. Roll the attempt back so the payment record does not
		// claim success against a dead booking.
		if _, rerr := s.payments.RevokeSuccess(ctx, p.ID); rerr != nil {
			log.Printf("payment: revoke errored for payment %d: %v", p.ID, rerr)
		}
		return nil, ErrInvalidState
	}

	p, err = s.payments.GetByBookingID(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	return toPaymentPayload(p), nil
}

// ReportFailure handles the checkout widget's failure callback: the payment
// attempt and the booking both settle as failed.
func (s *Service) ReportFailure(ctx context.Context, actorID int64, req FailureRequest) error {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if b.UserID != actorID {
		return ErrForbidden
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return ErrAlreadyPaid
	}

	if p, err := s.payments.GetByBookingID(ctx, req.BookingID); err == nil {
		if _, err := s.payments.MarkFailed(ctx, p.ID); err != nil {
			log.Printf("payment: mark failed errored for payment %d: %v", p.ID, err)
		}
	}

	ok, err := s.outcomes.MarkPaymentFailed(ctx, req.BookingID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

func (s *Service) GetByBooking(ctx context.Context, actorID, bookingID int64) (*PaymentPayload, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}

	p, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPaymentPayload(p), nil
}

func toPaymentPayload(p *domain.Payment) *PaymentPayload {
	return &PaymentPayload{
		BookingID:     p.BookingID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		OrderID:       p.RazorpayOrderID,
	}
}
