package services

import (
	"errors"
	"testing"

	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/utils"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(openTestDB(t), testConfig())
}

func TestAuthenticate(t *testing.T) {
	service := newTestAuthService(t)

	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned %v", err)
	}
	admin := models.User{Username: "jai", Password: hash, IsStaff: true}
	if err := service.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	user, err := service.Authenticate("jai", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned %v", err)
	}
	if user.Username != "jai" {
		t.Errorf("Authenticate returned %q, want jai", user.Username)
	}

	if _, err := service.Authenticate("jai", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password returned %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Authenticate("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user returned %v, want ErrInvalidCredentials", err)
	}
}

func TestGuestCannotAuthenticate(t *testing.T) {
	service := newTestAuthService(t)

	guest, err := service.GetOrCreateGuest()
	if err != nil {
		t.Fatalf("GetOrCreateGuest returned %v", err)
	}

	// The stored marker must never verify as a password
	if _, err := service.Authenticate(guest.Username, models.UnusablePassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("guest login returned %v, want ErrInvalidCredentials", err)
	}
}

func TestGetOrCreateGuestIsStable(t *testing.T) {
	service := newTestAuthService(t)

	first, err := service.GetOrCreateGuest()
	if err != nil {
		t.Fatalf("GetOrCreateGuest returned %v", err)
	}
	second, err := service.GetOrCreateGuest()
	if err != nil {
		t.Fatalf("second GetOrCreateGuest returned %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("guest ids differ: %d vs %d", first.ID, second.ID)
	}

	var count int64
	service.DB.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestEnsureAdminUser(t *testing.T) {
	service := newTestAuthService(t)

	if err := service.EnsureAdminUser("jai", "s3cret"); err != nil {
		t.Fatalf("EnsureAdminUser returned %v", err)
	}

	user, err := service.Authenticate("jai", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate after bootstrap returned %v", err)
	}
	if !user.IsStaff || !user.IsSuperuser {
		t.Error("bootstrapped admin should be staff and superuser")
	}

	// Re-running with a new password rotates the credential
	if err := service.EnsureAdminUser("jai", "rotated"); err != nil {
		t.Fatalf("second EnsureAdminUser returned %v", err)
	}
	if _, err := service.Authenticate("jai", "rotated"); err != nil {
		t.Errorf("Authenticate with rotated password returned %v", err)
	}
}

func TestEnsureAdminUserRefusesGuest(t *testing.T) {
	service := newTestAuthService(t)

	if err := service.EnsureAdminUser(models.GuestUsername, "s3cret"); err == nil {
		t.Error("promoting the guest account should fail")
	}
}
