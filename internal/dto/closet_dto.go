package dto

import (
	"time"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteItemResponse reports what the cascade removed. The counts exist
// for observability; clients do not branch on them.
type DeleteItemResponse struct {
	Message        string `json:"message"`
	OutfitsDeleted int64  `json:"outfits_deleted"`
	ListsDeleted   int64  `json:"lists_deleted"`
}

type CreateOutfitRequest struct {
	Category string      `json:"category"`
	Items    []uuid.UUID `json:"items"`
}

type UpdateOutfitRequest struct {
	Category string      `json:"category"`
	Items    []uuid.UUID `json:"items"`
}

type OutfitResponse struct {
	ID        uuid.UUID   `json:"id"`
	Category  string      `json:"category"`
	Items     []uuid.UUID `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

type ListEntryPayload struct {
	ItemID  uuid.UUID `json:"item_id"`
	Checked bool      `json:"checked"`
}

type CreateListRequest struct {
	Name  string             `json:"name"`
	Items []ListEntryPayload `json:"items"`
}

type UpdateListRequest struct {
	Items []ListEntryPayload `json:"items"`
}

type ListResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Items     []ListEntryPayload `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}
