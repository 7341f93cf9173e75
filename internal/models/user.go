package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values, ordered from least to most privileged.
const (
	RoleClient     = "client"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var roleRanks = map[string]int{
	RoleClient:     1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RoleRank returns the privilege rank of a role, 0 for unknown roles.
func RoleRank(role string) int {
	return roleRanks[role]
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	_, ok := roleRanks[role]
	return ok
}

// User is an identity record. Email is stored lowercased and is unique.
// Password holds a bcrypt hash; the plaintext is never persisted.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Role      string         `gorm:"size:20;default:'client'" json:"role"`
	Verified  bool           `gorm:"default:false" json:"verified"`
	Phone     string         `gorm:"size:30" json:"phone,omitempty"`
	Address   string         `gorm:"size:500" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
