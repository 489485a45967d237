package services

import (
	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"

	"gorm.io/gorm"
)

// InterfaceContactService defines the contact message service contract
type InterfaceContactService interface {
	CreateMessage(name, email, subject, message string) (*models.ContactMessage, error)
	SearchMessages(search string, read *bool) ([]models.ContactMessage, error)
	GetMessageByID(id uint) (*models.ContactMessage, error)
	SetRead(id uint, read bool) error
	DeleteMessage(id uint) error
	CountMessages() (int64, error)
}

// ContactService provides contact message operations. Messages are
// created here only; nothing else may author one.
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, cfg *config.Config) *ContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// CreateMessage persists a new contact form submission
func (s *ContactService) CreateMessage(name, email, subject, message string) (*models.ContactMessage, error) {
	record := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// SearchMessages returns messages newest first, matching the search term
// across all content fields, optionally filtered by read state
func (s *ContactService) SearchMessages(search string, read *bool) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	query := s.DB.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ? OR message LIKE ?", like, like, like, like)
	}
	if read != nil {
		// read is reserved in MySQL, quote it
		query = query.Where("`read` = ?", *read)
	}
	err := query.Find(&messages).Error
	return messages, err
}

// GetMessageByID returns a single message
func (s *ContactService) GetMessageByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.DB.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// SetRead updates only the read flag; message content stays immutable
func (s *ContactService) SetRead(id uint, read bool) error {
	return s.DB.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", read).Error
}

// DeleteMessage removes a message
func (s *ContactService) DeleteMessage(id uint) error {
	return s.DB.Delete(&models.ContactMessage{}, id).Error
}

// CountMessages returns the total number of stored messages
func (s *ContactService) CountMessages() (int64, error) {
	var count int64
	err := s.DB.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
