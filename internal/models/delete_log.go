package models

import "time"

// DeleteLog records a listing that was physically purged from storage
type DeleteLog struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID    uint      `gorm:"not null;index" json:"property_id"`
	Title         string    `gorm:"type:varchar(200)" json:"title"`
	OwnerID       uint      `gorm:"not null" json:"owner_id"`
	DeactivatedAt time.Time `json:"deactivated_at"`
	DeletedAt     time.Time `gorm:"not null;autoCreateTime;index" json:"deleted_at"`
	Reason        string    `gorm:"type:varchar(50);not null" json:"reason"`
}

// TableName specifies the table name
func (DeleteLog) TableName() string {
	return "delete_logs"
}

// DeleteReason constants
const (
	DeleteReasonExpired = "inactive_retention_expired"
	DeleteReasonManual  = "manual_deletion"
)
