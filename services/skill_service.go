package services

import (
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// SkillGroup holds the skills of one category for display
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []models.Skill `json:"skills"`
}

// InterfaceSkillService defines the skill service contract
type InterfaceSkillService interface {
	GetAllSkills() ([]models.Skill, error)
	GetSkillsByCategory() ([]SkillGroup, error)
	SearchSkills(search string) ([]models.Skill, error)
	GetSkillByID(id uint) (*models.Skill, error)
	SaveSkill(skill *models.Skill) error
	DeleteSkill(id uint) error
}

// SkillService provides skill related operations
type SkillService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewSkillService creates a new skill service
func NewSkillService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) *SkillService {
	return &SkillService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetAllSkills returns all skills in display order
func (s *SkillService) GetAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.DB.Order("category, display_order, name").Find(&skills).Error
	return skills, err
}

// GetSkillsByCategory groups skills by category, preserving the declared
// category order and dropping categories that have no skills. Results
// are cached.
func (s *SkillService) GetSkillsByCategory() ([]SkillGroup, error) {
	var groups []SkillGroup
	err := s.Cache.Fetch(CacheKeySkills, &groups, func() (interface{}, error) {
		skills, err := s.GetAllSkills()
		if err != nil {
			return nil, err
		}

		byCode := make(map[string][]models.Skill)
		for _, skill := range skills {
			byCode[skill.Category] = append(byCode[skill.Category], skill)
		}

		result := make([]SkillGroup, 0, len(models.SkillCategories))
		for _, category := range models.SkillCategories {
			if categorySkills, ok := byCode[category.Code]; ok {
				result = append(result, SkillGroup{
					Category: category.Name,
					Skills:   categorySkills,
				})
			}
		}
		return result, nil
	})
	return groups, err
}

// SearchSkills returns skills matching the search term by name
func (s *SkillService) SearchSkills(search string) ([]models.Skill, error) {
	var skills []models.Skill
	query := s.DB.Order("category, display_order, name")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	err := query.Find(&skills).Error
	return skills, err
}

// GetSkillByID returns a single skill
func (s *SkillService) GetSkillByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := s.DB.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// SaveSkill creates or updates a skill
func (s *SkillService) SaveSkill(skill *models.Skill) error {
	if err := s.DB.Save(skill).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(CacheKeySkills)
	return nil
}

// DeleteSkill removes a skill
func (s *SkillService) DeleteSkill(id uint) error {
	if err := s.DB.Delete(&models.Skill{}, id).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(CacheKeySkills)
	return nil
}
