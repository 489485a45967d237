package services

import (
	"strings"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// InterfaceTechnologyService defines the technology service contract
type InterfaceTechnologyService interface {
	GetAllTechnologies() ([]models.Technology, error)
	SearchTechnologies(search string) ([]models.Technology, error)
	GetTechnologyByID(id uint) (*models.Technology, error)
	GetOrCreateByName(name string) (*models.Technology, error)
	SaveTechnology(technology *models.Technology) error
	DeleteTechnology(id uint) error
}

// TechnologyService provides technology related operations
type TechnologyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(db *gorm.DB, cfg *config.Config) *TechnologyService {
	return &TechnologyService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllTechnologies returns all technologies ordered by name
func (s *TechnologyService) GetAllTechnologies() ([]models.Technology, error) {
	var technologies []models.Technology
	err := s.DB.Order("name").Find(&technologies).Error
	return technologies, err
}

// SearchTechnologies returns technologies matching the search term by name
func (s *TechnologyService) SearchTechnologies(search string) ([]models.Technology, error) {
	var technologies []models.Technology
	query := s.DB.Order("name")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	err := query.Find(&technologies).Error
	return technologies, err
}

// GetTechnologyByID returns a single technology
func (s *TechnologyService) GetTechnologyByID(id uint) (*models.Technology, error) {
	var technology models.Technology
	if err := s.DB.First(&technology, id).Error; err != nil {
		return nil, err
	}
	return &technology, nil
}

// GetOrCreateByName finds a technology by its trimmed name, creating it
// on first use
func (s *TechnologyService) GetOrCreateByName(name string) (*models.Technology, error) {
	technology := models.Technology{Name: strings.TrimSpace(name)}
	err := s.DB.Where("name = ?", technology.Name).FirstOrCreate(&technology).Error
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// SaveTechnology creates or updates a technology
func (s *TechnologyService) SaveTechnology(technology *models.Technology) error {
	return s.DB.Save(technology).Error
}

// DeleteTechnology removes a technology
func (s *TechnologyService) DeleteTechnology(id uint) error {
	return s.DB.Delete(&models.Technology{}, id).Error
}
