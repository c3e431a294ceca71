package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the two-valued payment flag of an invoice.
type PaymentStatus string

const (
	PaymentNotCompleted PaymentStatus = "not completed"
	PaymentCompleted    PaymentStatus = "completed"
)

// IsValid checks the status against the known values.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentNotCompleted || s == PaymentCompleted
}

// CanTransitionTo allows staying put or moving forward only.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}

	return s == PaymentNotCompleted && next == PaymentCompleted
}

// Invoice is the record of a checkout, keyed by the payment provider's order id.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       string          `json:"orderId"`
	UserID        uuid.UUID       `json:"userId"`
	Customer      Customer        `json:"customer"`
	Items         LineItems       `json:"products"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CartID        *uuid.UUID      `json:"cartId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CapturedAt    *time.Time      `json:"capturedAt,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsOwnedBy reports whether the invoice belongs to the user.
func (inv *Invoice) IsOwnedBy(userID uuid.UUID) bool {
	return inv.UserID == userID
}

// IsCompleted reports whether payment has been captured.
func (inv *Invoice) IsCompleted() bool {
	return inv.PaymentStatus == PaymentCompleted
}

// TransitionTo moves the payment status forward. It returns false and leaves
// the invoice untouched when the move would regress the status.
func (inv *Invoice) TransitionTo(next PaymentStatus, at time.Time) bool {
	if !next.IsValid() || !inv.PaymentStatus.CanTransitionTo(next) {
		return false
	}
	if inv.PaymentStatus != next && next == PaymentCompleted {
		inv.CapturedAt = &at
	}
	inv.PaymentStatus = next

	return true
}

// InvoiceFilter narrows invoice listings. Nil bounds are open and set bounds are inclusive.
type InvoiceFilter struct {
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}
