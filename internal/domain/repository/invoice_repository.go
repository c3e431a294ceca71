package repository

import (
	"context"
	"errors"
	"time"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceNotFound is returned when no invoice matches.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrDuplicateOrderID is returned when an invoice already exists for the provider order.
	ErrDuplicateOrderID = errors.New("invoice order id already exists")
)

// SalesTotals is the aggregate over a window of invoices.
type SalesTotals struct {
	Total decimal.Decimal
	Count int64
}

// InvoiceRepository defines invoice persistence and aggregation queries.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Invoice, error)
	List(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumBetween totals invoices created in [from, to].
	SumBetween(ctx context.Context, from, to time.Time) (SalesTotals, error)

	// FindBetween lists invoices created in [from, to]; a zero from means no lower bound.
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error)
}
