package repository

import (
	"context"
	"errors"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the FCM token is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of payment notifications.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindByUserAndDeviceID finds the registration of a client device for the user.
	FindByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice soft deletes the device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteByTokens soft deletes every device holding one of the tokens.
	DeleteByTokens(ctx context.Context, tokens []string) error
}
