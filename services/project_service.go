package services

import (
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// InterfaceProjectService defines the project service contract
type InterfaceProjectService interface {
	GetAllProjects() ([]models.Project, error)
	GetFeaturedProject() (*models.Project, error)
	SearchProjects(search string, featured *bool) ([]models.Project, error)
	GetProjectByID(id uint) (*models.Project, error)
	SaveProject(project *models.Project, technologyIDs []uint) error
	DeleteProject(id uint) error
}

// ProjectService provides project related operations
type ProjectService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) *ProjectService {
	return &ProjectService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetAllProjects returns all projects with their technologies, in
// display order. Results are cached.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	err := s.Cache.Fetch(CacheKeyProjects, &projects, func() (interface{}, error) {
		var result []models.Project
		err := s.DB.Preload("Technologies").
			Order("display_order, created_at DESC").
			Find(&result).Error
		return result, err
	})
	return projects, err
}

// GetFeaturedProject returns the first featured project, or nil if none
// is flagged
func (s *ProjectService) GetFeaturedProject() (*models.Project, error) {
	projects, err := s.GetAllProjects()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Featured {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// SearchProjects returns projects matching the search term in title or
// description, optionally filtered by the featured flag
func (s *ProjectService) SearchProjects(search string, featured *bool) ([]models.Project, error) {
	var projects []models.Project
	query := s.DB.Preload("Technologies").Order("display_order, created_at DESC")
	if search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}
	err := query.Find(&projects).Error
	return projects, err
}

// GetProjectByID returns a single project with its technologies
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.DB.Preload("Technologies").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// SaveProject creates or updates a project and replaces its technology
// associations with the given set
func (s *ProjectService) SaveProject(project *models.Project, technologyIDs []uint) error {
	if err := s.DB.Save(project).Error; err != nil {
		return err
	}

	var technologies []models.Technology
	if len(technologyIDs) > 0 {
		if err := s.DB.Find(&technologies, technologyIDs).Error; err != nil {
			return err
		}
	}
	if err := s.DB.Model(project).Association("Technologies").Replace(technologies); err != nil {
		return err
	}

	s.Cache.Invalidate(CacheKeyProjects)
	return nil
}

// DeleteProject removes a project and its technology associations
func (s *ProjectService) DeleteProject(id uint) error {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Model(project).Association("Technologies").Clear(); err != nil {
		return err
	}
	if err := s.DB.Delete(project).Error; err != nil {
		return err
	}
	s.Cache.Invalidate(CacheKeyProjects)
	return nil
}
