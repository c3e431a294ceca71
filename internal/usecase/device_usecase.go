package usecase

import (
	"context"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
