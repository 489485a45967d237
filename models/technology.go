package models

import "time"

// Technology represents a technology used by one or more projects
type Technology struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Projects []Project `gorm:"many2many:project_technologies" json:"projects,omitempty"`
}
