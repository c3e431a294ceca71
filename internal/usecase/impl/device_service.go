package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a new device or updates an existing one
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	existing, err := srv.deviceRepo.FindByUserAndDeviceID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := srv.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := srv.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device")
	}

	now := srv.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WrapMessage("FCM token is already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (srv *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := srv.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := srv.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := srv.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// ownedDevice loads the device and hides devices of other users as not found.
func (srv *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound.WrapMessage("failed to find device")
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound.WrapMessage("device belongs to another user")
	}

	return device, nil
}
