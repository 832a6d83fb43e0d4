package domain

import "time"

type TransactionStatus string

const (
	TxnPending TransactionStatus = "pending"
	TxnSuccess TransactionStatus = "success"
	TxnFailed  TransactionStatus = "failed"
)

// Payment holds the advance payment attached 1:1 to a booking. Status is
// terminal once it leaves pending.
type Payment struct {
	ID                int64             `gorm:"primaryKey" json:"id"`
	BookingID         int64             `gorm:"uniqueIndex;not null" json:"booking_id"`
	TransactionID     string            `gorm:"uniqueIndex;type:varchar(100);not null" json:"transaction_id"`
	Amount            float64           `gorm:"not null" json:"amount"`
	Method            string            `gorm:"type:varchar(50)" json:"payment_method"`
	Status            TransactionStatus `gorm:"type:varchar(10);default:'pending';index" json:"status"`
	RazorpayOrderID   string            `gorm:"type:varchar(100)" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string            `gorm:"type:varchar(100)" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string            `gorm:"type:varchar(255)" json:"razorpay_signature,omitempty"`
	CreatedAt         time.Time         `json:"payment_date"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
