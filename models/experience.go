package models

import "time"

// Experience represents a work experience entry
type Experience struct {
	BaseModel
	Title     string     `gorm:"type:varchar(200);not null" json:"title"`
	Company   string     `gorm:"type:varchar(200);not null" json:"company"`
	Image     string     `gorm:"type:varchar(255)" json:"image"` // path under media/experiences/, empty if none
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"` // nil means current position
	// Markdown source, rendered to HTML for display
	Description  string `gorm:"type:longtext" json:"description"`
	DisplayOrder uint   `gorm:"default:0" json:"display_order"`
}

// IsCurrent reports whether this is a current position
func (e Experience) IsCurrent() bool {
	return e.EndDate == nil
}

// Period formats the date range for display, e.g. "June 2023 - Present"
func (e Experience) Period() string {
	if e.EndDate != nil {
		return e.StartDate.Format("January 2006") + " - " + e.EndDate.Format("January 2006")
	}
	return e.StartDate.Format("January 2006") + " - Present"
}
