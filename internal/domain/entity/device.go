package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device a customer registered to receive payment notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
