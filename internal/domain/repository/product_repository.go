package repository

import (
	"context"
	"errors"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when no product matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateBarcode is returned when a product with the barcode already exists.
	ErrDuplicateBarcode = errors.New("product barcode already exists")
)

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindLowStock returns products with at most threshold units, lowest first.
	FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
}
