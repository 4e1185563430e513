package services

import (
	"fmt"

	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verifyOwnedItems checks that every id names an existing item owned by
// the actor. Duplicate ids are collapsed before the existence check so
// outfits may legitimately repeat an item.
func verifyOwnedItems(db *gorm.DB, actorID uuid.UUID, itemIDs []uuid.UUID) error {
	unique := make(map[uuid.UUID]struct{}, len(itemIDs))
	ids := make([]uuid.UUID, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = struct{}{}
		ids = append(ids, id)
	}

	var count int64
	if err := db.Model(&models.Item{}).
		Where("owner_id = ? AND id IN ?", actorID, ids).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to verify items: %w", err)
	}
	if count != int64(len(ids)) {
		return fmt.Errorf("%w: one or more items do not exist", ErrInvalidRequest)
	}
	return nil
}
