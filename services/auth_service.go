package services

import (
	"errors"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/utils"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when a login attempt fails
var ErrInvalidCredentials = errors.New("invalid username or password")

// InterfaceAuthService defines the authentication service contract
type InterfaceAuthService interface {
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetOrCreateGuest() (*models.User, error)
	EnsureAdminUser(username, password string) error
}

// AuthService provides account lookup, credential verification and
// guest provisioning
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate verifies a username and password pair. The guest account
// carries no usable password and can never authenticate here.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password == models.UnusablePassword || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID returns a user by primary key
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateGuest returns the shared guest account, creating it with an
// unusable password on first use
func (s *AuthService) GetOrCreateGuest() (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", models.GuestUsername).
		Attrs(models.User{
			Email:    "guest@example.com",
			Password: models.UnusablePassword,
		}).
		FirstOrCreate(&user, models.User{Username: models.GuestUsername}).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdminUser upserts the staff+superuser account configured via the
// environment. This is the only supported admin provisioning path; the
// interactive command is disabled.
func (s *AuthService) EnsureAdminUser(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if username == models.GuestUsername {
		return errors.New("the guest account cannot be promoted to admin")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	var user models.User
	err = s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Username:    username,
			Password:    hash,
			IsStaff:     true,
			IsSuperuser: true,
		}
		return s.DB.Create(&user).Error
	}
	if err != nil {
		return err
	}

	user.Password = hash
	user.IsStaff = true
	user.IsSuperuser = true
	return s.DB.Save(&user).Error
}
