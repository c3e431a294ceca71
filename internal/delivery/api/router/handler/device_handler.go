package handler

import (
	"log/slog"
	"net/http"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push notification devices of the caller
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// RegisterDevice registers a device for payment receipts, or refreshes its token
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var deviceInfo usecase.DeviceInfo
	if err := c.Bind(&deviceInfo); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	if err := c.Validate(&deviceInfo); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid FCM token input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "FCM token updated successfully")
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Device deactivated successfully")
}
