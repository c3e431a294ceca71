package usecase

import (
	"context"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the caller's cart. Every operation on a cart id checks ownership.
type CartUsecase interface {
	// CreateCart returns the caller's cart, creating it when absent.
	// The boolean is true when a new cart was created.
	CreateCart(ctx context.Context, actor Actor) (*entity.Cart, bool, error)

	ListCarts(ctx context.Context, actor Actor) ([]*entity.Cart, error)
	GetCart(ctx context.Context, actor Actor, cartID uuid.UUID) (*entity.Cart, error)
	AddProduct(ctx context.Context, actor Actor, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveProduct drops the latest line for the product. A missing product is not an error.
	RemoveProduct(ctx context.Context, actor Actor, cartID, productID uuid.UUID) (*entity.Cart, error)

	DeleteCart(ctx context.Context, actor Actor, cartID uuid.UUID) error
}
