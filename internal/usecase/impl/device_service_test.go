package impl

import (
	"context"
	"testing"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	mockRepo "trinity/internal/mocks/repository"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service: NewDeviceService(DeviceServiceParams{
			DeviceRepo: deviceRepo,
			Logger:     newDiscardLogger(),
		}),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDeviceRefreshesToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-123", FCMToken: "old"}
	refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "device-123", FCMToken: "new"}

	fx.deviceRepo.EXPECT().FindByUserAndDeviceID(ctx, userID, "device-123").Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "device-123", Platform: "android"})

	require.NoError(t, err)
	assert.Equal(t, "new", device.FCMToken)
}

func TestDeviceService_RegisterDevice_TokenTaken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindByUserAndDeviceID(ctx, userID, "device-9").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-9", Platform: "web"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestDeviceService_OwnershipChecks(t *testing.T) {
	owner := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		call    func(svc usecase.DeviceUsecase, ctx context.Context) error
		found   *entity.UserDevice
		findErr error
		wantErr error
	}{
		{
			name: "update token of another user's device",
			call: func(svc usecase.DeviceUsecase, ctx context.Context) error {
				return svc.UpdateFCMToken(ctx, uuid.New(), deviceID, "t")
			},
			found:   &entity.UserDevice{ID: deviceID, UserID: owner},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "deactivate unknown device",
			call: func(svc usecase.DeviceUsecase, ctx context.Context) error {
				return svc.DeactivateDevice(ctx, owner, deviceID)
			},
			findErr: repository.ErrDeviceNotFound,
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)

			err := tt.call(fx.service, ctx)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	owner := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: owner}
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, owner, device.ID))
}

func TestDeviceService_GetUserDevices_RepoError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, errors.New("db down"))

	_, err := fx.service.GetUserDevices(ctx, userID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
