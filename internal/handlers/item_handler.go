package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Sanj24Dev/sort-and-style/internal/blobstore"
	"github.com/Sanj24Dev/sort-and-style/internal/dto"
	"github.com/Sanj24Dev/sort-and-style/internal/middleware"
	"github.com/Sanj24Dev/sort-and-style/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemService *services.ItemService
	blobs       blobstore.Store
}

func NewItemHandler(itemService *services.ItemService, blobs blobstore.Store) *ItemHandler {
	return &ItemHandler{itemService: itemService, blobs: blobs}
}

// GetItems handles GET /items - returns the authenticated user's items.
func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.itemService.ListItems(actorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch items",
		})
	}

	baseURL := c.Protocol() + "://" + c.Hostname()
	responses := make([]dto.ItemResponse, len(items))
	for i, item := range items {
		imageURL := item.ImageURL
		if len(imageURL) > 0 && imageURL[0] == '/' {
			imageURL = baseURL + imageURL
		}
		responses[i] = dto.ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category,
			ImageURL:  imageURL,
			CreatedAt: item.CreatedAt,
		}
	}

	return c.JSON(responses)
}

// UploadItem handles POST /items/upload - multipart photo upload plus
// name and category fields. The blob store resolves the durable image URL
// before the item record is created.
func (h *ItemHandler) UploadItem(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Photo file is required",
		})
	}

	if file.Size > 10*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Photo size must be less than 10MB",
		})
	}

	contentType := file.Header.Get("Content-Type")
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/heic": true,
	}
	if !validTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image format. Only JPEG, PNG, and HEIC are allowed",
		})
	}

	name := c.FormValue("name")
	category := c.FormValue("category")

	fileExt := filepath.Ext(file.Filename)
	if fileExt == "" {
		fileExt = ".jpg"
	}
	key := fmt.Sprintf("%s_%s%s", actorID.String()[:8], uuid.New().String()[:8], fileExt)

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read photo",
		})
	}
	defer src.Close()

	imageURL, err := h.blobs.Put(c.Context(), key, contentType, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store photo",
		})
	}

	item, err := h.itemService.CreateItem(actorID, name, category, imageURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		ImageURL:  item.ImageURL,
		CreatedAt: item.CreatedAt,
	})
}

// DeleteItem handles DELETE /items/:id - deletes an item and cascades the
// removal through the owner's outfits and lists.
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	actorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid item ID",
		})
	}

	result, err := h.itemService.DeleteItem(actorID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Item not found",
			})
		case errors.Is(err, services.ErrMissingActor):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You can only delete your own items",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete item",
		})
	}

	return c.JSON(dto.DeleteItemResponse{
		Message:        "Item deleted successfully",
		OutfitsDeleted: result.OutfitsDeleted,
		ListsDeleted:   result.ListsDeleted,
	})
}
