package models

import "time"

// UserRole defines the account roles
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleAgent        UserRole = "AGENT"
	RolePendingAgent UserRole = "PENDING_AGENT"
)

// User represents an account that can own listings
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100)" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	Role        UserRole  `gorm:"type:varchar(20);not null;default:'PENDING_AGENT';index" json:"role"`
	Enabled     bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
