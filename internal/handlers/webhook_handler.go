package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/config"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
	"github.com/selimcobanoglu/storehub-backend/internal/shopify"
)

type WebhookHandler struct {
	service *services.WebhookService
	cfg     *config.Config
}

func NewWebhookHandler(service *services.WebhookService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{service: service, cfg: cfg}
}

// HandleShopify verifies the HMAC over the raw body before anything else
// touches the payload. Verification fails closed: missing header, missing
// secret or any mismatch is a 401.
func (h *WebhookHandler) HandleShopify(c *fiber.Ctx) error {
	signature := c.Get(shopify.SignatureHeader)
	body := c.Body()

	if !shopify.ValidSignature(signature, body, h.cfg.ShopifyWebhookSecret) {
		slog.Warn("rejected shopify webhook", "topic", c.Get("X-Shopify-Topic"), "has_signature", signature != "")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook signature",
		})
	}

	topic := c.Get("X-Shopify-Topic")
	if topic == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing X-Shopify-Topic header",
		})
	}

	event, err := h.service.Ingest(topic, c.Get("X-Shopify-Shop-Domain"), body)
	if err != nil {
		slog.Error("webhook ingestion failed", "topic", topic, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process webhook",
		})
	}

	slog.Info("webhook ingested", "topic", topic, "event_id", event.ID)
	return c.JSON(fiber.Map{"received": true})
}

// ListEvents is the admin audit trail of recent deliveries.
func (h *WebhookHandler) ListEvents(c *fiber.Ctx) error {
	page, limit := pagination(c)

	events, total, err := h.service.List(c.Query("topic"), page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load webhook events",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"events":     events,
			"pagination": fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}
