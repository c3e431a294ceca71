package usecase

import (
	"context"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput starts a checkout of a cart.
type CreateOrderInput struct {
	CartID uuid.UUID
	// Total is optional; when set it must match the cart total.
	Total *decimal.Decimal
}

// CreateOrderOutput identifies the provider order the client approves.
type CreateOrderOutput struct {
	OrderID   string
	InvoiceID uuid.UUID
	IntentID  uuid.UUID
}

// CheckoutUsecase runs the payment saga of a cart.
type CheckoutUsecase interface {
	// CreateOrder creates the provider order and the pending invoice.
	// Calling it again for the same cart resumes the open checkout instead of starting a new one.
	CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*CreateOrderOutput, error)

	// CapturePayment captures the provider order and completes its invoice.
	// Capturing an already completed invoice succeeds without calling the provider.
	CapturePayment(ctx context.Context, actor Actor, orderID string) (*entity.Invoice, error)
}

// ReconcileResult summarizes one reconciliation pass.
type ReconcileResult struct {
	Scanned  int `json:"scanned"`
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
}

// ReconciliationUsecase finishes or abandons checkouts left half-applied.
type ReconciliationUsecase interface {
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}
