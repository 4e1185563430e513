package services

import (
	"errors"
	"fmt"

	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrListNotFound = errors.New("list not found")

type ListService struct {
	db *gorm.DB
}

func NewListService(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

// CreateList creates a checklist from the actor's own items. The actor
// becomes the owner.
func (s *ListService) CreateList(actorID uuid.UUID, name string, entries []models.ListEntry) (*models.List, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if err := validateListEntries(entries); err != nil {
		return nil, err
	}
	if err := verifyOwnedItems(s.db, actorID, entryItemIDs(entries)); err != nil {
		return nil, err
	}

	list := models.List{
		ID:      uuid.New(),
		OwnerID: actorID,
		Name:    name,
		Items:   datatypes.NewJSONSlice(entries),
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return &list, nil
}

// ListLists returns the actor's checklists, newest first.
func (s *ListService) ListLists(actorID uuid.UUID) ([]models.List, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	var lists []models.List
	if err := s.db.Where("owner_id = ?", actorID).Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch lists: %w", err)
	}
	return lists, nil
}

// UpdateList replaces the list's member pairs wholesale. Order and
// checked flags are persisted exactly as submitted; the replacement is a
// single-row update.
func (s *ListService) UpdateList(actorID, listID uuid.UUID, entries []models.ListEntry) (*models.List, error) {
	var list models.List
	if err := s.db.First(&list, "id = ?", listID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to load list: %w", err)
	}

	if err := authorize(actorID, list.OwnerID); err != nil {
		return nil, err
	}
	if err := validateListEntries(entries); err != nil {
		return nil, err
	}
	if err := verifyOwnedItems(s.db, actorID, entryItemIDs(entries)); err != nil {
		return nil, err
	}

	items := datatypes.NewJSONSlice(entries)
	if err := s.db.Model(&list).Update("items", items).Error; err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	list.Items = items
	return &list, nil
}

// DeleteList removes a checklist directly; nothing references a list by id.
func (s *ListService) DeleteList(actorID, listID uuid.UUID) error {
	var list models.List
	if err := s.db.First(&list, "id = ?", listID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to load list: %w", err)
	}

	if err := authorize(actorID, list.OwnerID); err != nil {
		return err
	}

	res := s.db.Delete(&models.List{}, "id = ?", listID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

// validateListEntries requires a non-empty sequence with item ids unique
// within the list (the pair is keyed by item id).
func validateListEntries(entries []models.ListEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidRequest)
	}
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ItemID]; dup {
			return fmt.Errorf("%w: duplicate item %s in list", ErrInvalidRequest, e.ItemID)
		}
		seen[e.ItemID] = struct{}{}
	}
	return nil
}

func entryItemIDs(entries []models.ListEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ItemID
	}
	return ids
}
