package domain

import "time"

type NotificationType string

const (
	NotifBookingRequest NotificationType = "booking_request"
	NotifBookingUpdate  NotificationType = "booking_update"
	NotifSystem         NotificationType = "system"
)

type Notification struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	RecipientID int64            `gorm:"index;not null" json:"recipient_id"`
	SenderID    *int64           `json:"sender_id,omitempty"`
	Type        NotificationType `gorm:"type:varchar(50);default:'system'" json:"notification_type"`
	Message     string           `gorm:"type:varchar(255)" json:"message"`
	BookingID   *int64           `json:"booking_id,omitempty"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
