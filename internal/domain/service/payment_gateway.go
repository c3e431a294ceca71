package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider order statuses used by the checkout flow.
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusApproved  = "APPROVED"
	PaymentStatusCreated   = "CREATED"
)

// PaymentItem is one purchase line sent to the provider.
type PaymentItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// PaymentOrderRequest describes an order to create at the provider.
type PaymentOrderRequest struct {
	// IdempotencyKey makes retried create calls return the same provider order.
	IdempotencyKey string
	ReferenceID    string
	Items          []PaymentItem
	Total          decimal.Decimal
}

// PaymentOrder is the provider's view of an order.
type PaymentOrder struct {
	ID     string
	Status string
}

// PaymentGateway wraps the external payment provider.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *PaymentOrderRequest) (*PaymentOrder, error)

	// CaptureOrder captures an approved order; the returned status is COMPLETED on success.
	CaptureOrder(ctx context.Context, orderID, idempotencyKey string) (*PaymentOrder, error)

	GetOrder(ctx context.Context, orderID string) (*PaymentOrder, error)
}
