package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a product review. A user may review a product once; the
// composite unique index enforces that at the store.
type Review struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product" json:"user_id"`
	ProductID string         `gorm:"size:64;not null;uniqueIndex:idx_reviews_user_product;index" json:"product_id"`
	Rating    int            `gorm:"not null" json:"rating"`
	Title     string         `gorm:"size:160" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Approved  bool           `gorm:"default:false;index" json:"approved"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
