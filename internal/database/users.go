package database

import (
	"errors"

	"gorm.io/gorm"

	"property-listings-api/internal/models"
)

// CreateUser inserts a new account.
func (gdb *GormDB) CreateUser(user *models.User) error {
	return gdb.db.Create(user).Error
}

// GetUserByID retrieves an account by its identifier.
func (gdb *GormDB) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := gdb.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves an account by email, used on login.
func (gdb *GormDB) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := gdb.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether an account with the email is already registered.
func (gdb *GormDB) EmailExists(email string) (bool, error) {
	var count int64
	err := gdb.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// SaveUser persists changes to an account.
func (gdb *GormDB) SaveUser(user *models.User) error {
	return gdb.db.Save(user).Error
}

// DeleteUser removes an account.
func (gdb *GormDB) DeleteUser(id uint) error {
	result := gdb.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAllUsers lists every account, newest first.
func (gdb *GormDB) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := gdb.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// GetUsersByRole lists accounts holding the given role.
func (gdb *GormDB) GetUsersByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := gdb.db.Where("role = ?", role).Order("created_at ASC").Find(&users).Error
	return users, err
}
