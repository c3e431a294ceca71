package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/constants"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) NotifyPaymentCaptured(ctx context.Context, event *service.CheckoutEvent) (*usecase.NotifyResult, error) {
	if event == nil || event.EventType != constants.EventPaymentCaptured {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("not a payment captured event")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id in event")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.NotifyResult{Devices: len(devices)}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	msg := service.PushMessage{
		Title: "Payment received",
		Body:  fmt.Sprintf("Your payment of %s was captured for order %s", event.TotalValue, event.OrderID),
		Data: map[string]string{
			"event_id":   event.EventID,
			"invoice_id": event.InvoiceID,
			"order_id":   event.OrderID,
		},
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += service.MaxPushBatch {
		batch := tokens[start:min(start+service.MaxPushBatch, len(tokens))]

		batchResult, err := srv.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			// Other batches may still get through.
			srv.log(ctx).Warn("Failed to send push batch",
				slog.Int("size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += batchResult.SuccessCount
		result.Failed += batchResult.FailureCount
		invalidTokens = append(invalidTokens, batchResult.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeleteByTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to remove invalid tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		} else {
			result.RemovedTokens = len(invalidTokens)
		}
	}

	srv.log(ctx).Info("Payment notification sent",
		slog.String("orderID", event.OrderID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
