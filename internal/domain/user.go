package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone         string     `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	BaselineReady    bool       `gorm:"not null;default:false" json:"baseline_ready"`
	AlertSnoozeUntil *time.Time `json:"alert_snooze_until,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone"`
}

// UpdateSnoozeRequest sets or clears the alert snooze window for a user.
// A null snooze_until clears any active snooze.
type UpdateSnoozeRequest struct {
	SnoozeUntil *time.Time `json:"snooze_until"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	Timezone         string     `json:"timezone"`
	BaselineReady    bool       `json:"baseline_ready"`
	AlertSnoozeUntil *time.Time `json:"alert_snooze_until,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Timezone:         u.Timezone,
		BaselineReady:    u.BaselineReady,
		AlertSnoozeUntil: u.AlertSnoozeUntil,
		CreatedAt:        u.CreatedAt,
	}
}
