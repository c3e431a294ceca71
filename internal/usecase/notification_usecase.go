package usecase

import (
	"context"

	"trinity/internal/domain/service"
)

// NotifyResult summarizes the push fan-out of one event.
type NotifyResult struct {
	Devices       int
	Sent          int
	Failed        int
	RemovedTokens int
}

// NotificationUsecase turns checkout events into push notifications.
type NotificationUsecase interface {
	// NotifyPaymentCaptured pushes a receipt to every active device of the buyer
	// and forgets tokens the provider rejects.
	NotifyPaymentCaptured(ctx context.Context, event *service.CheckoutEvent) (*NotifyResult, error)
}
