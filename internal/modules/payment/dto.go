package payment

type CreateSessionRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// SessionResponse carries what the checkout widget needs to open the order.
type SessionResponse struct {
	BookingID     int64   `json:"booking_id"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	AmountPaise   int     `json:"amount_paise"`
	Currency      string  `json:"currency"`
	KeyID         string  `json:"key_id"`
}

type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type FailureRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Reason    string `json:"reason"`
}

type PaymentPayload struct {
	BookingID     int64   `json:"booking_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	OrderID       string  `json:"order_id,omitempty"`
}
