package services

import (
	"errors"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// ErrExperienceNotFound is returned when an experience id does not exist
var ErrExperienceNotFound = errors.New("experience not found")

// InterfaceExperienceService defines the experience service contract
type InterfaceExperienceService interface {
	GetAllExperiences() ([]models.Experience, error)
	SearchExperiences(search string) ([]models.Experience, error)
	GetExperienceByID(id uint) (*models.Experience, error)
	CreateExperience(experience *models.Experience) error
	UpdateExperience(experience *models.Experience) error
	DeleteExperience(id uint) (*models.Experience, error)
}

// ExperienceService provides work experience related operations
type ExperienceService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewExperienceService creates a new experience service
func NewExperienceService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) *ExperienceService {
	return &ExperienceService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetAllExperiences returns all experiences in display order. Results
// are cached.
func (s *ExperienceService) GetAllExperiences() ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.Cache.Fetch(CacheKeyExperiences, &experiences, func() (interface{}, error) {
		var result []models.Experience
		err := s.DB.Order("display_order, start_date DESC").Find(&result).Error
		return result, err
	})
	return experiences, err
}

// SearchExperiences returns experiences matching the search term in
// title, company or description
func (s *ExperienceService) SearchExperiences(search string) ([]models.Experience, error) {
	var experiences []models.Experience
	query := s.DB.Order("display_order, start_date DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR company LIKE ? OR description LIKE ?", like, like, like)
	}
	err := query.Find(&experiences).Error
	return experiences, err
}

// GetExperienceByID returns a single experience
func (s *ExperienceService) GetExperienceByID(id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := s.DB.First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

// CreateExperience persists a new experience entry
func (s *ExperienceService) CreateExperience(experience *models.Experience) error {
	if err := s.DB.Create(experience).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(CacheKeyExperiences)
	return nil
}

// UpdateExperience persists changes to an existing experience entry
func (s *ExperienceService) UpdateExperience(experience *models.Experience) error {
	if err := s.DB.Save(experience).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(CacheKeyExperiences)
	return nil
}

// DeleteExperience hard-deletes an experience by id, returning the
// deleted record so callers can report its title
func (s *ExperienceService) DeleteExperience(id uint) (*models.Experience, error) {
	experience, err := s.GetExperienceByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(experience).Error; err != nil {
		return nil, err
	}
	s.Cache.Invalidate(CacheKeyExperiences)
	return experience, nil
}
