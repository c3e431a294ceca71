package usecase

import (
	"context"
	"time"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListInvoicesInput holds the optional, inclusive listing bounds.
type ListInvoicesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// CreateInvoiceInput is a manual invoice entry.
type CreateInvoiceInput struct {
	UserID        uuid.UUID
	OrderID       string
	Items         entity.LineItems
	Total         decimal.Decimal
	PaymentStatus entity.PaymentStatus
}

// UpdateInvoiceInput is a partial invoice edit. Nil fields are left unchanged.
type UpdateInvoiceInput struct {
	PaymentStatus *entity.PaymentStatus
	Items         entity.LineItems
	Total         *decimal.Decimal
}

// InvoiceUsecase defines invoice queries and administration.
type InvoiceUsecase interface {
	// ListInvoices scopes the listing to the actor unless they may read any invoice.
	ListInvoices(ctx context.Context, actor Actor, input *ListInvoicesInput) ([]*entity.Invoice, error)

	GetInvoice(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Invoice, error)
	CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error)

	// UpdateInvoice rejects edits that would move a completed payment back.
	UpdateInvoice(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error)

	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}
