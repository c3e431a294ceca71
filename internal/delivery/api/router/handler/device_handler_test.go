package handler

import (
	"net/http"
	"testing"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	mockUsecase "trinity/internal/mocks/usecase"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestDeviceHandler(t *testing.T, user *entity.User) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/devices", asUser(user))
	g.POST("", h.RegisterDevice)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
	e, deviceUC := createTestDeviceHandler(t, user)

	info := &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}
	deviceUC.EXPECT().RegisterDevice(mock.Anything, user.ID, info).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: user.ID, FCMToken: "fcm-1", IsActive: true}, nil)

	rec := perform(e, http.MethodPost, "/api/devices", `{"fcmToken":"fcm-1","deviceId":"pixel-8","platform":"android"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isActive":true`)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	e, _ := createTestDeviceHandler(t, &entity.User{ID: uuid.New()})

	rec := perform(e, http.MethodPost, "/api/devices", `{"fcmToken":"fcm-1","deviceId":"d","platform":"symbian"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "platform")
}

func TestDeviceHandler_ForeignDevice(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	e, deviceUC := createTestDeviceHandler(t, user)

	deviceID := uuid.New()
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, user.ID, deviceID).Return(domainerrors.ErrDeviceNotFound)
	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, user.ID, deviceID, "fcm-2").Return(domainerrors.ErrDeviceNotFound)

	assert.Equal(t, http.StatusNotFound, perform(e, http.MethodDelete, "/api/devices/"+deviceID.String(), "").Code)
	assert.Equal(t, http.StatusNotFound, perform(e, http.MethodPut, "/api/devices/"+deviceID.String()+"/token", `{"fcmToken":"fcm-2"}`).Code)
	assert.Equal(t, http.StatusBadRequest, perform(e, http.MethodDelete, "/api/devices/not-a-uuid", "").Code)
}
