package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookEvent is a Shopify webhook delivery persisted after its HMAC
// signature checked out. Payload keeps the raw JSON body; Processed marks
// whether a topic handler has consumed the event.
type WebhookEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Topic      string         `gorm:"size:100;not null;index" json:"topic"`
	ShopDomain string         `gorm:"size:255" json:"shop_domain"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	Processed  bool           `gorm:"default:false;index" json:"processed"`
	CreatedAt  time.Time      `json:"created_at"`
}
