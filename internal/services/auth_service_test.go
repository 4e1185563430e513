package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Sanj24Dev/sort-and-style/internal/config"
	"github.com/Sanj24Dev/sort-and-style/internal/dto"
	"github.com/Sanj24Dev/sort-and-style/internal/models"
	"gorm.io/gorm"
)

func testAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(db, cfg), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := testAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected non-empty token pair")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("expected user email in response, got %s", resp.User.Email)
	}

	if _, err := svc.Register(&dto.RegisterRequest{
		Name:     "alice again",
		Email:    "alice@example.com",
		Password: "password123",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: expected ErrEmailTaken, got %v", err)
	}

	login, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.AccessToken == "" {
		t.Error("expected access token from login")
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == reg.RefreshToken {
		t.Error("expected refresh to rotate the token")
	}

	// The old token is revoked by rotation.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused token: expected ErrInvalidToken, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestDeleteAccountCascade(t *testing.T) {
	svc, db := testAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	alice := reg.User.ID

	bob := seedUser(t, db, "bob")
	aliceItem := seedItem(t, db, alice, "shirt")
	bobItem := seedItem(t, db, bob, "jeans")
	seedOutfit(t, db, alice, aliceItem)
	bobOutfit := seedOutfit(t, db, bob, bobItem)
	seedList(t, db, alice, models.ListEntry{ItemID: aliceItem, Checked: true})
	seedList(t, db, bob, models.ListEntry{ItemID: bobItem, Checked: false})

	if err := svc.DeleteAccount(alice, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", err)
	}

	if err := svc.DeleteAccount(alice, "password123"); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	// Everything alice owned is gone.
	if n := countRows(t, db, &models.User{}); n != 1 {
		t.Errorf("expected 1 user left, got %d", n)
	}
	var items []models.Item
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("failed to load items: %v", err)
	}
	for _, it := range items {
		if it.OwnerID == alice {
			t.Errorf("item %s owned by deleted user survived", it.ID)
		}
	}
	var outfits []models.Outfit
	if err := db.Find(&outfits).Error; err != nil {
		t.Fatalf("failed to load outfits: %v", err)
	}
	for _, o := range outfits {
		if o.OwnerID == alice {
			t.Errorf("outfit %s owned by deleted user survived", o.ID)
		}
	}
	var lists []models.List
	if err := db.Find(&lists).Error; err != nil {
		t.Fatalf("failed to load lists: %v", err)
	}
	for _, l := range lists {
		if l.OwnerID == alice {
			t.Errorf("list %s owned by deleted user survived", l.ID)
		}
	}

	// Bob's closet is untouched.
	if n := countRows(t, db, &models.Item{}); n != 1 {
		t.Errorf("expected bob's item to survive, got %d items", n)
	}
	outfit := getOutfit(t, db, bobOutfit)
	if len(outfit.Items) != 1 || outfit.Items[0] != bobItem {
		t.Errorf("bob's outfit was modified: %v", outfit.Items)
	}

	if err := svc.DeleteAccount(alice, "password123"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("repeat delete: expected ErrUserNotFound, got %v", err)
	}
}
