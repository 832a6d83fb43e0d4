package domain

import "time"

type UserRole string

const (
	RolePlayer UserRole = "player"
	RoleOwner  UserRole = "owner"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `gorm:"type:varchar(10);default:'player';index" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
