package contact

import (
	"log"

	"property-listings-api/internal/models"
)

// Store is the storage boundary for contact messages.
type Store interface {
	CreateContact(contact *models.Contact) error
	GetRecentContacts(limit int) ([]models.Contact, error)
}

// Service persists contact form messages.
type Service struct {
	store Store
}

// NewService creates a contact service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Request is the contact form payload.
type Request struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=5,max=200"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// Save stores a contact message.
func (s *Service) Save(req Request) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.store.CreateContact(contact); err != nil {
		return nil, err
	}

	log.Printf("Contact message saved: id=%d from=%s", contact.ID, contact.Email)
	return contact, nil
}

// Recent lists the latest stored messages for the admin panel.
func (s *Service) Recent(limit int) ([]models.Contact, error) {
	return s.store.GetRecentContacts(limit)
}
