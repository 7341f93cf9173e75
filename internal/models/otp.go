package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePasscode is a short-lived verification code keyed by email.
// The unique index on email keeps at most one live code per identity:
// reissuing a code replaces the previous row. Only a sha256 hash of the
// 6-digit code is stored.
type OneTimePasscode struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	CodeHash  string    `gorm:"not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
