package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topics this backend acts on. Anything else is stored for audit and left
// unprocessed.
var handledTopics = map[string]bool{
	"orders/create":    true,
	"orders/updated":   true,
	"customers/create": true,
	"app/uninstalled":  true,
}

// WebhookService persists verified Shopify deliveries. Order and customer
// state lives on the Shopify side; this backend only records the events.
type WebhookService struct {
	db *gorm.DB
}

func NewWebhookService(db *gorm.DB) *WebhookService {
	return &WebhookService{db: db}
}

// Ingest stores a delivery whose signature already checked out.
func (s *WebhookService) Ingest(topic, shopDomain string, payload []byte) (*models.WebhookEvent, error) {
	event := models.WebhookEvent{
		ID:         uuid.New(),
		Topic:      topic,
		ShopDomain: shopDomain,
		Payload:    datatypes.JSON(payload),
		Processed:  handledTopics[topic],
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to store webhook event: %w", err)
	}

	if !handledTopics[topic] {
		slog.Info("webhook stored without handler", "topic", topic, "shop", shopDomain)
	}
	return &event, nil
}

// List is the admin audit view of recent deliveries.
func (s *WebhookService) List(topic string, page, limit int) ([]models.WebhookEvent, int64, error) {
	var events []models.WebhookEvent
	var total int64

	query := s.db.Model(&models.WebhookEvent{})
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}
