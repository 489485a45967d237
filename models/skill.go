package models

import (
	"errors"

	"gorm.io/gorm"
)

// Skill category codes
const (
	CategoryLanguages    = "LANG"
	CategoryFrameworks   = "FRAME"
	CategoryAIML         = "AIML"
	CategoryBackend      = "BACK"
	CategoryCloud        = "CLOUD"
	CategoryTools        = "TOOL"
	CategoryFundamentals = "FUND"
	CategoryOther        = "OTHER"
)

// SkillCategory pairs a category code with its display name
type SkillCategory struct {
	Code string
	Name string
}

// SkillCategories lists all categories in their display order
var SkillCategories = []SkillCategory{
	{CategoryLanguages, "Languages"},
	{CategoryFrameworks, "Frameworks"},
	{CategoryAIML, "AI/ML"},
	{CategoryBackend, "Backend/Databases"},
	{CategoryCloud, "Cloud/DevOps"},
	{CategoryTools, "Developer Tools"},
	{CategoryFundamentals, "CS Fundamentals"},
	{CategoryOther, "Other"},
}

// ErrSkillLevelOutOfRange is returned when a skill level falls outside 0-100
var ErrSkillLevelOutOfRange = errors.New("skill level must be between 0 and 100")

// Skill represents a skill displayed on the about page
type Skill struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Category string `gorm:"type:varchar(5);default:'OTHER'" json:"category"`
	Icon     string `gorm:"type:varchar(10)" json:"icon"` // emoji or icon character
	// Proficiency from 0 to 100
	Level uint `gorm:"not null" json:"level"`
	// Order for display within the category
	DisplayOrder uint `gorm:"default:0" json:"display_order"`
}

// CategoryDisplay returns the display name for the skill's category
func (s Skill) CategoryDisplay() string {
	for _, c := range SkillCategories {
		if c.Code == s.Category {
			return c.Name
		}
	}
	return "Other"
}

// BeforeSave validates the skill level range
func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if s.Level > 100 {
		return ErrSkillLevelOutOfRange
	}
	return nil
}
