package services

import (
	"errors"
	"testing"

	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"github.com/google/uuid"
)

func TestCreateListValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	itemA := seedItem(t, db, owner, "shirt")

	if _, err := svc.CreateList(owner, "", []models.ListEntry{{ItemID: itemA}}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("empty name: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.CreateList(owner, "packing", nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("empty entries: expected ErrInvalidRequest, got %v", err)
	}
	dup := []models.ListEntry{{ItemID: itemA, Checked: true}, {ItemID: itemA, Checked: false}}
	if _, err := svc.CreateList(owner, "packing", dup); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("duplicate item ids: expected ErrInvalidRequest, got %v", err)
	}
	unknown := []models.ListEntry{{ItemID: uuid.New(), Checked: true}}
	if _, err := svc.CreateList(owner, "packing", unknown); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("unknown item: expected ErrInvalidRequest, got %v", err)
	}
}

func TestListPairIntegrity(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	itemA := seedItem(t, db, owner, "shirt")
	itemB := seedItem(t, db, owner, "jeans")

	entries := []models.ListEntry{
		{ItemID: itemA, Checked: true},
		{ItemID: itemB, Checked: false},
	}
	list, err := svc.CreateList(owner, "packing", entries)
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	stored := getList(t, db, list.ID)
	if len(stored.Items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stored.Items))
	}
	for i, want := range entries {
		if stored.Items[i].ItemID != want.ItemID || stored.Items[i].Checked != want.Checked {
			t.Errorf("entry %d: expected (%s, %v), got (%s, %v)",
				i, want.ItemID, want.Checked, stored.Items[i].ItemID, stored.Items[i].Checked)
		}
	}
}

func TestUpdateListReplacesEntries(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	itemA := seedItem(t, db, owner, "shirt")
	itemB := seedItem(t, db, owner, "jeans")
	listID := seedList(t, db, owner, models.ListEntry{ItemID: itemA, Checked: false})

	updated := []models.ListEntry{
		{ItemID: itemB, Checked: true},
		{ItemID: itemA, Checked: true},
	}
	if _, err := svc.UpdateList(owner, listID, updated); err != nil {
		t.Fatalf("UpdateList failed: %v", err)
	}

	stored := getList(t, db, listID)
	if len(stored.Items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stored.Items))
	}
	if stored.Items[0].ItemID != itemB || !stored.Items[0].Checked {
		t.Errorf("entry 0: expected (%s, true), got (%s, %v)",
			itemB, stored.Items[0].ItemID, stored.Items[0].Checked)
	}
}

func TestUpdateListUnauthorized(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	intruder := seedUser(t, db, "bob")
	itemA := seedItem(t, db, owner, "shirt")
	listID := seedList(t, db, owner, models.ListEntry{ItemID: itemA, Checked: false})

	entries := []models.ListEntry{{ItemID: itemA, Checked: true}}
	if _, err := svc.UpdateList(intruder, listID, entries); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	stored := getList(t, db, listID)
	if stored.Items[0].Checked {
		t.Error("expected list unchanged after unauthorized update")
	}
}

func TestUpdateListNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	itemA := seedItem(t, db, owner, "shirt")

	entries := []models.ListEntry{{ItemID: itemA, Checked: true}}
	if _, err := svc.UpdateList(owner, uuid.New(), entries); !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteList(t *testing.T) {
	db := openTestDB(t)
	svc := NewListService(db)
	owner := seedUser(t, db, "alice")
	itemA := seedItem(t, db, owner, "shirt")
	listID := seedList(t, db, owner, models.ListEntry{ItemID: itemA, Checked: true})

	if err := svc.DeleteList(owner, listID); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
	if n := countRows(t, db, &models.List{}); n != 0 {
		t.Errorf("expected list gone, got %d rows", n)
	}
	if err := svc.DeleteList(owner, listID); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}
