package handlers

import (
	"errors"

	"github.com/Sanj24Dev/sort-and-style/internal/dto"
	"github.com/Sanj24Dev/sort-and-style/internal/middleware"
	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/Sanj24Dev/sort-and-style/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OutfitHandler struct {
	outfitService *services.OutfitService
}

func NewOutfitHandler(outfitService *services.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfitService: outfitService}
}

// GetOutfits handles GET /outfits.
func (h *OutfitHandler) GetOutfits(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	outfits, err := h.outfitService.ListOutfits(actorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch outfits",
		})
	}

	responses := make([]dto.OutfitResponse, len(outfits))
	for i, o := range outfits {
		responses[i] = outfitResponse(&o)
	}
	return c.JSON(responses)
}

// CreateOutfit handles POST /outfits/upload.
func (h *OutfitHandler) CreateOutfit(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	outfit, err := h.outfitService.CreateOutfit(actorID, req.Category, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create outfit",
		})
	}

	resp := outfitResponse(outfit)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateOutfit handles PUT /outfits/:id - replaces category and members.
func (h *OutfitHandler) UpdateOutfit(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	outfitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid outfit ID",
		})
	}

	var req dto.UpdateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	outfit, err := h.outfitService.UpdateOutfit(actorID, outfitID, req.Category, req.Items)
	if err != nil {
		return outfitError(c, err, "Failed to update outfit")
	}

	resp := outfitResponse(outfit)
	return c.JSON(resp)
}

// DeleteOutfit handles DELETE /outfits/:id.
func (h *OutfitHandler) DeleteOutfit(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	outfitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid outfit ID",
		})
	}

	if err := h.outfitService.DeleteOutfit(actorID, outfitID); err != nil {
		return outfitError(c, err, "Failed to delete outfit")
	}

	return c.JSON(fiber.Map{"message": "Outfit deleted successfully"})
}

func outfitError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrOutfitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Outfit not found",
		})
	case errors.Is(err, services.ErrMissingActor):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You can only modify your own outfits",
		})
	case errors.Is(err, services.ErrInvalidRequest):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func outfitResponse(o *models.Outfit) dto.OutfitResponse {
	return dto.OutfitResponse{
		ID:        o.ID,
		Category:  o.Category,
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
	}
}
