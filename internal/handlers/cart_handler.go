package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type CartHandler struct {
	service *services.CartService
}

func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	cart, err := h.service.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load cart",
		})
	}

	return c.JSON(cart)
}

func (h *CartHandler) Replace(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ReplaceCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	cart, err := h.service.Replace(userID, req.Items)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(cart)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.service.Clear(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear cart",
		})
	}

	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
