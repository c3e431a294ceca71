package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It holds a customer's device registered for payment notifications.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_fcm_token,where:deleted_at IS NULL"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
