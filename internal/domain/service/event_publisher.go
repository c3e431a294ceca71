package service

import (
	"context"
)

// CheckoutEvent is published after a checkout step completes and consumed by the worker.
type CheckoutEvent struct {
	RequestID  string `json:"request_id,omitempty"`
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	InvoiceID  string `json:"invoice_id"`
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id"`
	TotalValue string `json:"total"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishCheckoutEvent(ctx context.Context, event *CheckoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
