package domain

import "time"

// ChatMessage is a booking-scoped message between the requesting player and
// the turf owner.
type ChatMessage struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	BookingID  int64     `gorm:"index;not null" json:"booking_id"`
	SenderID   int64     `gorm:"not null" json:"sender_id"`
	ReceiverID int64     `gorm:"not null" json:"receiver_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

// TurfChatMessage is turf-wide chat: any user can message the owner before a
// booking exists. Owner replies carry an explicit receiver.
type TurfChatMessage struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	TurfID     int64     `gorm:"index;not null" json:"turf_id"`
	SenderID   int64     `gorm:"not null" json:"sender_id"`
	ReceiverID *int64    `json:"receiver_id,omitempty"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (TurfChatMessage) TableName() string { return "turf_chat_messages" }
