package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type InquiryHandler struct {
	service *services.InquiryService
}

func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Create is the public contact form; no session required.
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	inquiry, err := h.service.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

func (h *InquiryHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)
	resolved := boolFilter(c, "resolved")

	inquiries, total, err := h.service.List(resolved, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load inquiries",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"inquiries":  inquiries,
			"pagination": fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *InquiryHandler) Resolve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid inquiry ID",
		})
	}

	var req dto.ResolveInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.Resolve(id, req.AdminNote); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Inquiry resolved"})
}

func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid inquiry ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Inquiry deleted"})
}
