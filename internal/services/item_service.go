package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sanj24Dev/sort-and-style/internal/metrics"
	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

// CascadeResult reports what an item deletion swept away.
type CascadeResult struct {
	OutfitsDeleted int64
	ListsDeleted   int64
}

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem records an uploaded item. The image URL is expected to be
// resolved by the blob store before this call.
func (s *ItemService) CreateItem(actorID uuid.UUID, name, category, imageURL string) (*models.Item, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	if name == "" || category == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: name, category and image are required", ErrInvalidRequest)
	}

	item := models.Item{
		ID:       uuid.New(),
		OwnerID:  actorID,
		Name:     name,
		Category: category,
		ImageURL: imageURL,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// ListItems returns the actor's items, newest first.
func (s *ItemService) ListItems(actorID uuid.UUID) ([]models.Item, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	var items []models.Item
	if err := s.db.Where("owner_id = ?", actorID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

// DeleteItem deletes an item and guarantees that afterwards no outfit or
// list of the owner references it, and none of them is left empty.
//
// The cascade runs as strip-then-reap: first every member sequence loses
// all occurrences of the item, then the owner's collections are re-read
// and empty ones deleted. There is no multi-document transaction; the
// whole flow is idempotent, so a retry after a partial failure converges
// to the same final state.
func (s *ItemService) DeleteItem(actorID, itemID uuid.UUID) (*CascadeResult, error) {
	var item models.Item
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	if err := authorize(actorID, item.OwnerID); err != nil {
		return nil, err
	}

	res := s.db.Delete(&models.Item{}, "id = ?", itemID)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost the race to a concurrent delete of the same item.
		return nil, ErrItemNotFound
	}

	if err := s.stripFromOutfits(item.OwnerID, itemID); err != nil {
		return nil, err
	}
	if err := s.stripFromLists(item.OwnerID, itemID); err != nil {
		return nil, err
	}

	result, err := s.reapOrphans(item.OwnerID)
	if err != nil {
		return nil, err
	}

	metrics.ItemsDeleted.Inc()
	metrics.CascadeOutfitsDeleted.Add(float64(result.OutfitsDeleted))
	metrics.CascadeListsDeleted.Add(float64(result.ListsDeleted))

	slog.Info("item cascade complete",
		"item_id", itemID,
		"outfits_deleted", result.OutfitsDeleted,
		"lists_deleted", result.ListsDeleted,
	)
	return result, nil
}

// stripFromOutfits removes every occurrence of itemID from the owner's
// outfits. Membership is owner-scoped by construction, so scanning the
// owner's rows covers all possible references.
func (s *ItemService) stripFromOutfits(ownerID, itemID uuid.UUID) error {
	var outfits []models.Outfit
	if err := s.db.Where("owner_id = ?", ownerID).Find(&outfits).Error; err != nil {
		return fmt.Errorf("failed to scan outfits: %w", err)
	}

	for i := range outfits {
		kept := make(datatypes.JSONSlice[uuid.UUID], 0, len(outfits[i].Items))
		for _, id := range outfits[i].Items {
			if id != itemID {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(outfits[i].Items) {
			continue
		}
		if err := s.db.Model(&outfits[i]).Update("items", kept).Error; err != nil {
			return fmt.Errorf("failed to strip item from outfit %s: %w", outfits[i].ID, err)
		}
	}
	return nil
}

// stripFromLists removes the pair keyed by itemID from the owner's lists.
func (s *ItemService) stripFromLists(ownerID, itemID uuid.UUID) error {
	var lists []models.List
	if err := s.db.Where("owner_id = ?", ownerID).Find(&lists).Error; err != nil {
		return fmt.Errorf("failed to scan lists: %w", err)
	}

	for i := range lists {
		kept := make(datatypes.JSONSlice[models.ListEntry], 0, len(lists[i].Items))
		for _, entry := range lists[i].Items {
			if entry.ItemID != itemID {
				kept = append(kept, entry)
			}
		}
		if len(kept) == len(lists[i].Items) {
			continue
		}
		if err := s.db.Model(&lists[i]).Update("items", kept).Error; err != nil {
			return fmt.Errorf("failed to strip item from list %s: %w", lists[i].ID, err)
		}
	}
	return nil
}

// reapOrphans re-reads the owner's collections and deletes every one whose
// member sequence is empty. Re-reading, rather than remembering ids from
// the strip passes, is what lets a retry pick up orphans a failed earlier
// run left behind.
func (s *ItemService) reapOrphans(ownerID uuid.UUID) (*CascadeResult, error) {
	var result CascadeResult

	var outfits []models.Outfit
	if err := s.db.Where("owner_id = ?", ownerID).Find(&outfits).Error; err != nil {
		return nil, fmt.Errorf("failed to scan outfits for orphans: %w", err)
	}
	var orphanOutfits []uuid.UUID
	for _, o := range outfits {
		if len(o.Items) == 0 {
			orphanOutfits = append(orphanOutfits, o.ID)
		}
	}
	if len(orphanOutfits) > 0 {
		res := s.db.Delete(&models.Outfit{}, "id IN ?", orphanOutfits)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to delete orphaned outfits: %w", res.Error)
		}
		result.OutfitsDeleted = res.RowsAffected
	}

	var lists []models.List
	if err := s.db.Where("owner_id = ?", ownerID).Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to scan lists for orphans: %w", err)
	}
	var orphanLists []uuid.UUID
	for _, l := range lists {
		if len(l.Items) == 0 {
			orphanLists = append(orphanLists, l.ID)
		}
	}
	if len(orphanLists) > 0 {
		res := s.db.Delete(&models.List{}, "id IN ?", orphanLists)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to delete orphaned lists: %w", res.Error)
		}
		result.ListsDeleted = res.RowsAffected
	}

	return &result, nil
}
