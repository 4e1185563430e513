package models

import (
	"time"

	"github.com/google/uuid"
)

// User owns items, outfits and lists. Rows are hard-deleted so that
// account removal leaves no owner id behind for the cascade to miss.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	PhotoURL  string    `gorm:"type:text" json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
