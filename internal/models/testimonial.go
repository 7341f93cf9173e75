package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a storefront quote submitted by a customer and shown
// publicly once an admin approves it.
type Testimonial struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AuthorName string         `gorm:"size:120;not null" json:"author_name"`
	Quote      string         `gorm:"type:text;not null" json:"quote"`
	Approved   bool           `gorm:"default:false;index" json:"approved"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
