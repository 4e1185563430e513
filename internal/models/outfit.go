package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Outfit groups items under a category. Items is an ordered sequence of
// item ids; duplicates are permitted. An outfit whose sequence becomes
// empty is an orphan and must not persist.
type Outfit struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID                      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Category  string                         `gorm:"size:50;not null" json:"category"`
	Items     datatypes.JSONSlice[uuid.UUID] `json:"items"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}
