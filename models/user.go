package models

// GuestUsername is the reserved account auto-provisioned for
// unauthenticated visitors. It never carries staff rights.
const GuestUsername = "guest"

// UnusablePassword is stored for accounts that must never authenticate
// with a password (the guest account). It is not a valid bcrypt hash,
// so verification always fails.
const UnusablePassword = "!"

// User represents a site account. Regular visitors are attached to the
// shared guest account; administrators carry the staff or superuser flag.
type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(150);unique;not null" json:"username"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never exposed
	Email       string `gorm:"type:varchar(254)" json:"email"`
	IsStaff     bool   `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`
}

// IsGuest reports whether this is the shared guest account
func (u User) IsGuest() bool {
	return u.Username == GuestUsername
}
