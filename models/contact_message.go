package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage represents a contact form submission. Rows are created
// only by the public contact handler; the only field ever updated
// afterwards is the read flag.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:longtext;not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkAsRead flags the message as read, touching no other column
func (m *ContactMessage) MarkAsRead(db *gorm.DB) error {
	m.Read = true
	return db.Model(m).Update("read", true).Error
}
