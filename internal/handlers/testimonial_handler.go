package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/middleware"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type TestimonialHandler struct {
	service     *services.TestimonialService
	authService *services.AuthService
}

func NewTestimonialHandler(service *services.TestimonialService, authService *services.AuthService) *TestimonialHandler {
	return &TestimonialHandler{service: service, authService: authService}
}

func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.SessionUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	testimonial, err := h.service.Create(userID, user.Name, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func (h *TestimonialHandler) ListApproved(c *fiber.Ctx) error {
	page, limit := pagination(c)

	testimonials, total, err := h.service.ListApproved(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load testimonials",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"testimonials": testimonials,
			"pagination":   fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *TestimonialHandler) ListAll(c *fiber.Ctx) error {
	page, limit := pagination(c)
	approved := boolFilter(c, "approved")

	testimonials, total, err := h.service.ListAll(approved, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load testimonials",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"testimonials": testimonials,
			"pagination":   fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *TestimonialHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid testimonial ID",
		})
	}

	if err := h.service.Approve(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Testimonial approved"})
}

func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid testimonial ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Testimonial deleted"})
}
