package domain

import "time"

type Feedback struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"uniqueIndex:idx_feedback_user_turf;not null" json:"user_id"`
	TurfID    int64     `gorm:"uniqueIndex:idx_feedback_user_turf;not null" json:"turf_id"`
	Rating    int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
