package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the persisted shopping cart, one per user.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single line in a cart. Prices are cents to avoid float drift.
type CartItem struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID      string    `gorm:"size:64;not null" json:"product_id"`
	VariantID      string    `gorm:"size:64" json:"variant_id,omitempty"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	UnitPriceCents int64     `gorm:"not null" json:"unit_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
}
