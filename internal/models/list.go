package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListEntry pairs an item reference with its checklist state. The pairing
// must round-trip exactly through updates: order and flags are preserved.
type ListEntry struct {
	ItemID  uuid.UUID `json:"item_id"`
	Checked bool      `json:"checked"`
}

// List is a checklist of items. Item ids are unique within one list. A
// list whose sequence becomes empty is an orphan and must not persist.
type List struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID                      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string                         `gorm:"size:100;not null" json:"name"`
	Items     datatypes.JSONSlice[ListEntry] `json:"items"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}
