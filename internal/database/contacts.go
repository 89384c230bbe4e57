package database

import "property-listings-api/internal/models"

// CreateContact stores a contact form message.
func (gdb *GormDB) CreateContact(contact *models.Contact) error {
	return gdb.db.Create(contact).Error
}

// GetRecentContacts lists the latest contact messages.
func (gdb *GormDB) GetRecentContacts(limit int) ([]models.Contact, error) {
	if limit <= 0 {
		limit = 50
	}
	var contacts []models.Contact
	err := gdb.db.Order("created_at DESC").Limit(limit).Find(&contacts).Error
	return contacts, err
}
