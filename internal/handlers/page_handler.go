package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/services"
)

type PageHandler struct {
	service *services.PageService
}

func NewPageHandler(service *services.PageService) *PageHandler {
	return &PageHandler{service: service}
}

// GetPublished serves storefront content; drafts are invisible here.
func (h *PageHandler) GetPublished(c *fiber.Ctx) error {
	page, err := h.service.GetPublished(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Page not found",
		})
	}
	return c.JSON(page)
}

func (h *PageHandler) Get(c *fiber.Ctx) error {
	page, err := h.service.Get(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Page not found",
		})
	}
	return c.JSON(page)
}

func (h *PageHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)

	pages, total, err := h.service.List(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load pages",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"pages":      pages,
			"pagination": fiber.Map{"page": page, "limit": limit, "total": total},
		},
	})
}

func (h *PageHandler) Create(c *fiber.Ctx) error {
	var req dto.UpsertPageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	page, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(page)
}

func (h *PageHandler) Update(c *fiber.Ctx) error {
	var req dto.UpsertPageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	page, err := h.service.Update(c.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(page)
}

func (h *PageHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("slug")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Page deleted"})
}
