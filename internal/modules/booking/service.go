package booking

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
)

const conflictReason = "slot was taken by another confirmed booking"

type Service struct {
	bookings      BookingRepository
	turfs         TurfReader
	slots         SlotReader
	notifs        NotificationSender
	mailer        Mailer
	deadlines     DeadlineScheduler
	paymentWindow time.Duration
}

func NewService(
	bookings BookingRepository,
	turfs TurfReader,
	slots SlotReader,
	notifs NotificationSender,
	mailer Mailer,
	deadlines DeadlineScheduler,
	paymentWindow time.Duration,
) *Service {
	if paymentWindow <= 0 {
		paymentWindow = 5 * time.Minute
	}
	return &Service{
		bookings:      bookings,
		turfs:         turfs,
		slots:         slots,
		notifs:        notifs,
		mailer:        mailer,
		deadlines:     deadlines,
		paymentWindow: paymentWindow,
	}
}

// CreateBooking registers a pending request. Overlapping pending requests
// for the same slot are allowed on purpose: conflicts are resolved when the
// owner approves, not at request time.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*BookingPayload, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	day = domain.DateOnly(day)
	if day.Before(domain.DateOnly(time.Now())) {
		return nil, ErrPastDate
	}

	turf, err := s.turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var start, end string
	if req.SlotID != nil {
		slot, err := s.slots.GetByID(ctx, *req.SlotID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if slot.TurfID != turf.ID {
			return nil, ErrSlotMismatch
		}
		if !slot.IsActive {
			return nil, ErrSlotInactive
		}
		start, end = slot.StartTime, slot.EndTime
	} else {
		start, end = req.StartTime, req.EndTime
	}

	duration, err := durationHours(start, end)
	if err != nil {
		return nil, ErrValidation
	}

	// Pending requests may pile up on the same slot, but a confirmed
	// booking already holding it makes the request pointless.
	taken, err := s.bookings.HasConfirmedConflict(ctx, turf.ID, req.SlotID, day, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		UserID:        userID,
		TurfID:        turf.ID,
		SlotID:        req.SlotID,
		Date:          day,
		StartTime:     start,
		EndTime:       end,
		DurationHours: duration,
		TotalPrice:    turf.PricePerHour * float64(duration),
		BookingStatus: domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyBookingRequested(ctx, turf.OwnerID, userID, b.ID, turf.Name); err != nil {
			log.Printf("booking: notify requested failed for booking %d: %v", b.ID, err)
		}
	}

	return toPayload(b), nil
}

// Approve moves a pending request into the payment window. If a confirmed
// booking already holds the slot for that date, the request is rejected
// automatically instead and AutoRejected is set on the result.
func (s *Service) Approve(ctx context.Context, bookingID, actorID int64) (*ApproveResult, error) {
	ownerID, status, err := s.bookings.GetTurfOwnerForBooking(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ownerID != actorID {
		return nil, ErrForbidden
	}
	if status != string(domain.BookingPending) {
		return nil, ErrInvalidTransition
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	conflict, err := s.bookings.HasConfirmedConflict(ctx, b.TurfID, b.SlotID, b.Date, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		if _, err := s.bookings.RejectIfPending(ctx, bookingID); err != nil {
			return nil, err
		}
		s.notifyRejected(ctx, bookingID, conflictReason)
		b, err = s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		return &ApproveResult{Booking: toPayload(b), AutoRejected: true, Reason: conflictReason}, nil
	}

	approvedAt := time.Now().UTC()
	ok, err := s.bookings.Approve(ctx, bookingID, approvedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if s.deadlines != nil {
		if err := s.deadlines.Schedule(ctx, bookingID, approvedAt.Add(s.paymentWindow)); err != nil {
			log.Printf("booking: schedule deadline failed for booking %d: %v", bookingID, err)
		}
	}

	details, err := s.bookings.GetDetails(ctx, bookingID)
	if err == nil {
		advance := details.TotalPrice / 2
		if s.notifs != nil {
			if err := s.notifs.NotifyBookingApproved(ctx, details.UserID, bookingID, details.TurfName, advance); err != nil {
				log.Printf("booking: notify approved failed for booking %d: %v", bookingID, err)
			}
		}
		if s.mailer != nil {
			s.mailer.BookingApproved(details.UserEmail, details.TurfName, advance, s.paymentWindow)
		}
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &ApproveResult{Booking: toPayload(b)}, nil
}

func (s *Service) Reject(ctx context.Context, bookingID, actorID int64) (*BookingPayload, error) {
	ownerID, _, err := s.bookings.GetTurfOwnerForBooking(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ownerID != actorID {
		return nil, ErrForbidden
	}

	ok, err := s.bookings.RejectIfPending(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	s.notifyRejected(ctx, bookingID, "rejected by the turf owner")

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toPayload(b), nil
}

// Cancel lets the requesting player withdraw. Confirmed bookings stay put;
// cancellation after payment would need a refund flow this platform does not
// have.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64) (*BookingPayload, error) {
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

	ok, err := s.bookings.CancelIfNotConfirmed(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if s.deadlines != nil {
		s.deadlines.Cancel(ctx, bookingID)
	}

	if details, err := s.bookings.GetDetails(ctx, bookingID); err == nil && s.notifs != nil {
		if err := s.notifs.NotifyBookingCancelled(ctx, details.OwnerID, details.UserID, bookingID, details.TurfName); err != nil {
			log.Printf("booking: notify cancelled failed for booking %d: %v", bookingID, err)
		}
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toPayload(b), nil
}

// ConfirmPaid finishes the happy path after a verified payment. Safe to call
// twice: the second call finds the booking already confirmed and reports
// false.
func (s *Service) ConfirmPaid(ctx context.Context, bookingID int64) (bool, error) {
	ok, err := s.bookings.FinalizeSuccess(ctx, bookingID)
	if err != nil || !ok {
		return ok, err
	}

	if s.deadlines != nil {
		s.deadlines.Cancel(ctx, bookingID)
	}

	if details, err := s.bookings.GetDetails(ctx, bookingID); err == nil {
		if s.notifs != nil {
			if err := s.notifs.NotifyBookingConfirmed(ctx, details.UserID, bookingID, details.TurfName); err != nil {
				log.Printf("booking: notify confirmed failed for booking %d: %v", bookingID, err)
			}
		}
		if s.mailer != nil {
			s.mailer.BookingConfirmed(details.UserEmail, details.TurfName)
		}
	}
	return true, nil
}

// MarkPaymentFailed downgrades the booking after the gateway reported a
// failed or abandoned payment.
func (s *Service) MarkPaymentFailed(ctx context.Context, bookingID int64) (bool, error) {
	ok, err := s.bookings.FinalizeFailure(ctx, bookingID)
	if err != nil || !ok {
		return ok, err
	}

	if s.deadlines != nil {
		s.deadlines.Cancel(ctx, bookingID)
	}
	s.notifyRejected(ctx, bookingID, "payment failed")
	return true, nil
}

// ExpireUnpaid is the payment-window timer callback. A booking that already
// paid or left the awaiting state is untouched.
func (s *Service) ExpireUnpaid(ctx context.Context, bookingID int64) {
	ok, err := s.bookings.ExpireIfUnpaid(ctx, bookingID)
	if err != nil {
		log.Printf("booking: expire failed for booking %d: %v", bookingID, err)
		return
	}
	if !ok {
		return
	}
	s.notifyRejected(ctx, bookingID, "payment window expired")
}

// SweepAwaitingPayment re-arms timers for bookings stuck in the payment
// window, expiring on the spot those whose deadline already passed. Run at
// startup so restarts never leave a booking waiting forever.
func (s *Service) SweepAwaitingPayment(ctx context.Context) error {
	rows, err := s.bookings.ListAwaitingPayment(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, b := range rows {
		deadline := now.Add(s.paymentWindow)
		if b.ApprovedAt != nil {
			deadline = b.ApprovedAt.Add(s.paymentWindow)
		}
		if !deadline.After(now) {
			s.ExpireUnpaid(ctx, b.ID)
			continue
		}
		if s.deadlines != nil {
			if err := s.deadlines.Schedule(ctx, b.ID, deadline); err != nil {
				log.Printf("booking: re-arm deadline failed for booking %d: %v", b.ID, err)
			}
		}
	}
	return nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, actorID int64, actorRole domain.UserRole) (*BookingPayload, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.UserID != actorID && actorRole != domain.RoleAdmin {
		ownerID, _, err := s.bookings.GetTurfOwnerForBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if ownerID != actorID {
			return nil, ErrForbidden
		}
	}
	return toPayload(b), nil
}

func (s *Service) ListMyBookings(ctx context.Context, userID int64) ([]*BookingPayload, error) {
	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*BookingPayload, 0, len(rows))
	for i := range rows {
		out = append(out, toPayload(&rows[i]))
	}
	return out, nil
}

func (s *Service) ListPendingRequests(ctx context.Context, ownerID int64) (any, error) {
	return s.bookings.ListPendingForOwner(ctx, ownerID)
}

// OwnerSummary reports confirmed, paid bookings and summed income for the
// owner's turfs. The range comes from a named filter (today, yesterday,
// month; today when absent), with explicit from/to bounds taking precedence.
func (s *Service) OwnerSummary(ctx context.Context, ownerID int64, filter, fromStr, toStr string) (*OwnerSummaryResponse, error) {
	now := time.Now()
	var from, to time.Time
	switch filter {
	case "", "today":
		from = domain.DateOnly(now)
		to = from
	case "yesterday":
		from = domain.DateOnly(now.AddDate(0, 0, -1))
		to = from
	case "month":
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = domain.DateOnly(now)
	default:
		return nil, ErrValidation
	}

	var err error
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return nil, ErrValidation
		}
	}
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return nil, ErrValidation
		}
	}
	if to.Before(from) {
		return nil, ErrValidation
	}

	rows, total, err := s.bookings.OwnerSummary(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	return &OwnerSummaryResponse{
		From:        from.Format("2006-01-02"),
		To:          to.Format("2006-01-02"),
		TotalIncome: total,
		Bookings:    rows,
	}, nil
}

func (s *Service) notifyRejected(ctx context.Context, bookingID int64, reason string) {
	details, err := s.bookings.GetDetails(ctx, bookingID)
	if err != nil {
		log.Printf("booking: load details failed for booking %d: %v", bookingID, err)
		return
	}
	if s.notifs != nil {
		if err := s.notifs.NotifyBookingRejected(ctx, details.UserID, bookingID, details.TurfName, reason); err != nil {
			log.Printf("booking: notify rejected failed for booking %d: %v", bookingID, err)
		}
	}
	if s.mailer != nil {
		s.mailer.BookingRejected(details.UserEmail, details.TurfName, reason)
	}
}

// durationHours derives the billed whole hours from a window, flooring the
// difference and never billing less than one hour.
func durationHours(startStr, endStr string) (int, error) {
	start, err := time.Parse("15:04", startStr)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("15:04", endStr)
	if err != nil {
		return 0, err
	}
	if !end.After(start) {
		return 0, ErrValidation
	}
	h := int(end.Sub(start).Hours())
	if h < 1 {
		h = 1
	}
	return h, nil
}
