package models

// Project represents a portfolio project
type Project struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:longtext" json:"description"`
	Image       string `gorm:"type:varchar(255)" json:"image"` // path under media/projects/, empty if none
	GithubURL   string `gorm:"type:varchar(500)" json:"github_url"`
	Featured    bool   `gorm:"default:false" json:"featured"`
	// Lower numbers appear first
	DisplayOrder uint `gorm:"default:0" json:"display_order"`

	Technologies []Technology `gorm:"many2many:project_technologies" json:"technologies,omitempty"`
}

// TechnologyNames returns the names of the associated technologies
func (p Project) TechnologyNames() []string {
	names := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		names = append(names, tech.Name)
	}
	return names
}
