package chat

type SendBookingMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type SendTurfMessageRequest struct {
	Message    string `json:"message" binding:"required"`
	ReceiverID *int64 `json:"receiver_id"`
}

// WSEvent is the envelope pushed over the websocket.
type WSEvent struct {
	Type      string `json:"type"`
	BookingID int64  `json:"booking_id,omitempty"`
	TurfID    int64  `json:"turf_id,omitempty"`
	SenderID  int64  `json:"sender_id"`
	Message   string `json:"message"`
	SentAt    string `json:"sent_at"`
}
