package booking

import (
	"time"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/repository"
)

type CreateBookingRequest struct {
	TurfID    int64  `json:"turf_id" binding:"required"`
	SlotID    *int64 `json:"slot_id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BookingPayload struct {
	ID            int64                `json:"id"`
	TurfID        int64                `json:"turf_id"`
	SlotID        *int64               `json:"slot_id,omitempty"`
	Date          string               `json:"date"`
	StartTime     string               `json:"start_time"`
	EndTime       string               `json:"end_time"`
	DurationHours int                  `json:"duration_hours"`
	TotalPrice    float64              `json:"total_price"`
	AdvanceAmount float64              `json:"advance_amount"`
	BookingStatus domain.BookingStatus `json:"booking_status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// ApproveResult distinguishes a normal approval from the conflict path where
// a confirmed sibling forced an automatic rejection.
type ApproveResult struct {
	Booking      *BookingPayload `json:"booking"`
	AutoRejected bool            `json:"auto_rejected"`
	Reason       string          `json:"reason,omitempty"`
}

type OwnerSummaryResponse struct {
	From        string                       `json:"from"`
	To          string                       `json:"to"`
	TotalIncome float64                      `json:"total_income"`
	Bookings    []repository.OwnerBookingRow `json:"bookings"`
}

func toPayload(b *domain.Booking) *BookingPayload {
	return &BookingPayload{
		ID:            b.ID,
		TurfID:        b.TurfID,
		SlotID:        b.SlotID,
		Date:          b.Date.Format("2006-01-02"),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DurationHours: b.DurationHours,
		TotalPrice:    b.TotalPrice,
		AdvanceAmount: b.TotalPrice / 2,
		BookingStatus: b.BookingStatus,
		PaymentStatus: b.PaymentStatus,
		ApprovedAt:    b.ApprovedAt,
		CreatedAt:     b.CreatedAt,
	}
}
