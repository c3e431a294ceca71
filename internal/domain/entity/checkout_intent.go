package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutState is a step of the checkout saga.
type CheckoutState string

const (
	// CheckoutStarted is recorded before the provider order is requested.
	CheckoutStarted CheckoutState = "started"
	// CheckoutOrderCreated means the provider returned an order id but the invoice may not exist yet.
	CheckoutOrderCreated CheckoutState = "order_created"
	// CheckoutPendingPayment means the invoice exists and awaits capture.
	CheckoutPendingPayment CheckoutState = "pending_payment"
	CheckoutCaptureStarted CheckoutState = "capture_started"
	CheckoutCaptureFailed  CheckoutState = "capture_failed"
	// CheckoutCaptured means the invoice is completed; the cart may still exist.
	CheckoutCaptured  CheckoutState = "captured"
	CheckoutCompleted CheckoutState = "completed"
	CheckoutAbandoned CheckoutState = "abandoned"
)

// OpenCheckoutStates are states from which a new create-order call reuses the intent.
var OpenCheckoutStates = []CheckoutState{
	CheckoutStarted,
	CheckoutOrderCreated,
	CheckoutPendingPayment,
	CheckoutCaptureFailed,
}

// ActiveCheckoutStates are every non-terminal state. A cart with an intent in one of them
// cannot start another checkout.
var ActiveCheckoutStates = append(append([]CheckoutState{}, OpenCheckoutStates...),
	CheckoutCaptureStarted,
	CheckoutCaptured,
)

// ReconcilableStates are picked up by the reconciliation loop once stale.
var ReconcilableStates = []CheckoutState{
	CheckoutStarted,
	CheckoutOrderCreated,
	CheckoutCaptureStarted,
	CheckoutCaptured,
}

// IsCapturing reports whether the provider capture is running or already succeeded.
func (s CheckoutState) IsCapturing() bool {
	return s == CheckoutCaptureStarted || s == CheckoutCaptured
}

// IsTerminal reports whether the saga has finished.
func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutCompleted || s == CheckoutAbandoned
}

// IsOpen reports whether a new create-order call should resume this intent.
func (s CheckoutState) IsOpen() bool {
	return slices.Contains(OpenCheckoutStates, s)
}

// CheckoutIntent is the durable saga record of one checkout attempt on a cart.
// Its ID doubles as the idempotency key sent to the payment provider.
type CheckoutIntent struct {
	ID              uuid.UUID       `json:"id"`
	CartID          uuid.UUID       `json:"cartId"`
	UserID          uuid.UUID       `json:"userId"`
	Customer        Customer        `json:"customer"`
	Items           LineItems       `json:"products"`
	Total           decimal.Decimal `json:"total"`
	ProviderOrderID string          `json:"providerOrderId,omitempty"`
	State           CheckoutState   `json:"state"`
	LastError       string          `json:"lastError,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Advance records the new state and clears or sets the last error.
func (ci *CheckoutIntent) Advance(state CheckoutState, lastErr error) {
	ci.State = state
	ci.LastError = ""
	if lastErr != nil {
		ci.LastError = lastErr.Error()
	}
}

// ReferenceID is the purchase unit reference sent to the provider: the intent id without dashes.
func (ci *CheckoutIntent) ReferenceID() string {
	b := make([]byte, 0, 32)
	for _, r := range ci.ID.String() {
		if r != '-' {
			b = append(b, byte(r))
		}
	}

	return string(b)
}
