package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry is a customer contact message. Resolved flips once, by an admin.
type Inquiry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Subject   string         `gorm:"size:200" json:"subject"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Resolved  bool           `gorm:"default:false;index" json:"resolved"`
	AdminNote string         `gorm:"type:text" json:"admin_note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
