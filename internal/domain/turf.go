package domain

import "time"

type Turf struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	OwnerID      int64     `gorm:"index;not null" json:"owner_id"`
	Name         string    `gorm:"not null" json:"name" validate:"required"`
	Location     string    `json:"location"`
	Address      string    `gorm:"type:text" json:"address"`
	PricePerHour float64   `gorm:"not null" json:"price_per_hour" validate:"required,gt=0"`
	Amenities    string    `gorm:"type:text" json:"amenities"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Turf) TableName() string { return "turfs" }

// TurfSlot is a recurring daily time window offered by a turf. Times are
// stored as "HH:MM" strings; the pair (turf, start, end) is unique so an
// owner cannot register the same window twice.
type TurfSlot struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	TurfID    int64     `gorm:"uniqueIndex:idx_turf_slot_window;not null" json:"turf_id"`
	StartTime string    `gorm:"type:varchar(5);uniqueIndex:idx_turf_slot_window;not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);uniqueIndex:idx_turf_slot_window;not null" json:"end_time"`
	Label     string    `json:"label,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (TurfSlot) TableName() string { return "turf_slots" }
