package domain

import "time"

type BookingStatus string

const (
	BookingPending             BookingStatus = "pending"
	BookingConfirmAfterPayment BookingStatus = "confirm_after_payment"
	BookingConfirmed           BookingStatus = "confirmed"
	BookingRejected            BookingStatus = "rejected"
	BookingCancelled           BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Booking struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	UserID        int64         `gorm:"index;not null" json:"user_id"`
	TurfID        int64         `gorm:"index;not null" json:"turf_id"`
	SlotID        *int64        `gorm:"index" json:"slot_id,omitempty"`
	Date          time.Time     `gorm:"index;not null" json:"date"`
	StartTime     string        `gorm:"type:varchar(5)" json:"start_time"`
	DurationHours int           `gorm:"default:1" json:"duration_hours"`
	EndTime       string        `gorm:"type:varchar(5)" json:"end_time"`
	TotalPrice    float64       `gorm:"not null" json:"total_price"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);default:'pending'" json:"payment_status"`
	BookingStatus BookingStatus `gorm:"type:varchar(30);default:'pending';index" json:"booking_status"`
	ApprovedAt    *time.Time    `json:"approved_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// DateOnly strips the clock from t so bookings compare by calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
