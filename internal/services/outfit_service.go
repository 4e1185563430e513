package services

import (
	"errors"
	"fmt"

	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrOutfitNotFound = errors.New("outfit not found")

type OutfitService struct {
	db *gorm.DB
}

func NewOutfitService(db *gorm.DB) *OutfitService {
	return &OutfitService{db: db}
}

// CreateOutfit creates an outfit from the actor's own items. The actor
// becomes the owner.
func (s *OutfitService) CreateOutfit(actorID uuid.UUID, category string, itemIDs []uuid.UUID) (*models.Outfit, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	if err := validateOutfitMembers(category, itemIDs); err != nil {
		return nil, err
	}
	if err := verifyOwnedItems(s.db, actorID, itemIDs); err != nil {
		return nil, err
	}

	outfit := models.Outfit{
		ID:       uuid.New(),
		OwnerID:  actorID,
		Category: category,
		Items:    datatypes.NewJSONSlice(itemIDs),
	}
	if err := s.db.Create(&outfit).Error; err != nil {
		return nil, fmt.Errorf("failed to create outfit: %w", err)
	}
	return &outfit, nil
}

// ListOutfits returns the actor's outfits, newest first.
func (s *OutfitService) ListOutfits(actorID uuid.UUID) ([]models.Outfit, error) {
	if actorID == uuid.Nil {
		return nil, ErrMissingActor
	}
	var outfits []models.Outfit
	if err := s.db.Where("owner_id = ?", actorID).Order("created_at DESC").Find(&outfits).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch outfits: %w", err)
	}
	return outfits, nil
}

// UpdateOutfit replaces the outfit's category and member sequence. The
// replacement is a single-row update, atomic under the store's per-row
// guarantee.
func (s *OutfitService) UpdateOutfit(actorID, outfitID uuid.UUID, category string, itemIDs []uuid.UUID) (*models.Outfit, error) {
	var outfit models.Outfit
	if err := s.db.First(&outfit, "id = ?", outfitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutfitNotFound
		}
		return nil, fmt.Errorf("failed to load outfit: %w", err)
	}

	if err := authorize(actorID, outfit.OwnerID); err != nil {
		return nil, err
	}
	if err := validateOutfitMembers(category, itemIDs); err != nil {
		return nil, err
	}
	if err := verifyOwnedItems(s.db, actorID, itemIDs); err != nil {
		return nil, err
	}

	items := datatypes.NewJSONSlice(itemIDs)
	if err := s.db.Model(&outfit).Updates(map[string]interface{}{
		"category": category,
		"items":    items,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update outfit: %w", err)
	}

	outfit.Category = category
	outfit.Items = items
	return &outfit, nil
}

// DeleteOutfit removes an outfit directly. Nothing references an outfit
// by id, so no cascade is needed.
func (s *OutfitService) DeleteOutfit(actorID, outfitID uuid.UUID) error {
	var outfit models.Outfit
	if err := s.db.First(&outfit, "id = ?", outfitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOutfitNotFound
		}
		return fmt.Errorf("failed to load outfit: %w", err)
	}

	if err := authorize(actorID, outfit.OwnerID); err != nil {
		return err
	}

	res := s.db.Delete(&models.Outfit{}, "id = ?", outfitID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete outfit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOutfitNotFound
	}
	return nil
}

func validateOutfitMembers(category string, itemIDs []uuid.UUID) error {
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRequest)
	}
	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidRequest)
	}
	return nil
}
