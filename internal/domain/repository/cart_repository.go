package repository

import (
	"context"
	"errors"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart matches.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines cart persistence. A user owns at most one cart.
type CartRepository interface {
	// CreateForUser inserts an empty cart for the user, or returns the existing one.
	// The boolean is true when a new cart was inserted.
	CreateForUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// FindByIDForUpdate loads the cart and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error)

	// SaveItems writes the item list and bumps the version.
	SaveItems(ctx context.Context, cart *entity.Cart) error

	Delete(ctx context.Context, id uuid.UUID) error
}
