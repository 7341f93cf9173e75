package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type ReviewHandler struct {
	service *services.ReviewService
}

func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	review, err := h.service.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrReviewExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListByProduct is the public storefront feed: approved reviews only.
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	page, limit := pagination(c)

	reviews, total, avg, err := h.service.ListByProduct(productID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"reviews":        reviews,
			"average_rating": avg,
			"pagination":     fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *ReviewHandler) ListAll(c *fiber.Ctx) error {
	page, limit := pagination(c)
	approved := boolFilter(c, "approved")

	reviews, total, err := h.service.ListAll(approved, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load reviews",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"reviews":    reviews,
			"pagination": fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *ReviewHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	if err := h.service.Approve(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Review approved"})
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Review deleted"})
}

// boolFilter reads an optional true/false query param; nil means no filter.
func boolFilter(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
