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

type ListHandler struct {
	listService *services.ListService
}

func NewListHandler(listService *services.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// GetLists handles GET /lists.
func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	lists, err := h.listService.ListLists(actorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch lists",
		})
	}

	responses := make([]dto.ListResponse, len(lists))
	for i, l := range lists {
		responses[i] = listResponse(&l)
	}
	return c.JSON(responses)
}

// CreateList handles POST /lists/upload.
func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	list, err := h.listService.CreateList(actorID, req.Name, entriesFromPayload(req.Items))
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create list",
		})
	}

	resp := listResponse(list)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateList handles PUT /lists/:id - replaces the member pairs wholesale.
func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid list ID",
		})
	}

	var req dto.UpdateListRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	list, err := h.listService.UpdateList(actorID, listID, entriesFromPayload(req.Items))
	if err != nil {
		return listError(c, err, "Failed to update list")
	}

	resp := listResponse(list)
	return c.JSON(resp)
}

// DeleteList handles DELETE /lists/:id.
func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid list ID",
		})
	}

	if err := h.listService.DeleteList(actorID, listID); err != nil {
		return listError(c, err, "Failed to delete list")
	}

	return c.JSON(fiber.Map{"message": "List deleted successfully"})
}

func listError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrListNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "List not found",
		})
	case errors.Is(err, services.ErrMissingActor):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You can only modify your own lists",
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

func entriesFromPayload(payload []dto.ListEntryPayload) []models.ListEntry {
	entries := make([]models.ListEntry, len(payload))
	for i, p := range payload {
		entries[i] = models.ListEntry{ItemID: p.ItemID, Checked: p.Checked}
	}
	return entries
}

func listResponse(l *models.List) dto.ListResponse {
	items := make([]dto.ListEntryPayload, len(l.Items))
	for i, e := range l.Items {
		items[i] = dto.ListEntryPayload{ItemID: e.ItemID, Checked: e.Checked}
	}
	return dto.ListResponse{
		ID:        l.ID,
		Name:      l.Name,
		Items:     items,
		CreatedAt: l.CreatedAt,
	}
}
