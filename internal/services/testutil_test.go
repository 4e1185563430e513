package services

import (
	"path/filepath"
	"testing"

	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates a fresh on-disk sqlite database per test. The pure-Go
// driver keeps the suite CGO-free; t.TempDir handles cleanup.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Item{},
		&models.Outfit{},
		&models.List{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Password: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

func seedItem(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	item := models.Item{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     name,
		Category: "tops",
		ImageURL: "/uploads/" + name + ".jpg",
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item.ID
}

func seedOutfit(t *testing.T, db *gorm.DB, ownerID uuid.UUID, itemIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	outfit := models.Outfit{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Category: "casual",
		Items:    datatypes.NewJSONSlice(itemIDs),
	}
	if err := db.Create(&outfit).Error; err != nil {
		t.Fatalf("failed to seed outfit: %v", err)
	}
	return outfit.ID
}

func seedList(t *testing.T, db *gorm.DB, ownerID uuid.UUID, entries ...models.ListEntry) uuid.UUID {
	t.Helper()
	list := models.List{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "packing",
		Items:   datatypes.NewJSONSlice(entries),
	}
	if err := db.Create(&list).Error; err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}
	return list.ID
}

func getOutfit(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Outfit {
	t.Helper()
	var outfit models.Outfit
	if err := db.First(&outfit, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to load outfit %s: %v", id, err)
	}
	return &outfit
}

func getList(t *testing.T, db *gorm.DB, id uuid.UUID) *models.List {
	t.Helper()
	var list models.List
	if err := db.First(&list, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to load list %s: %v", id, err)
	}
	return &list
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
