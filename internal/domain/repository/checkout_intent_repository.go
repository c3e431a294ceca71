package repository

import (
	"context"
	"errors"
	"time"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckoutIntentNotFound is returned when no intent matches.
var ErrCheckoutIntentNotFound = errors.New("checkout intent not found")

// CheckoutIntentRepository persists the checkout saga.
type CheckoutIntentRepository interface {
	Create(ctx context.Context, intent *entity.CheckoutIntent) error
	Update(ctx context.Context, intent *entity.CheckoutIntent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutIntent, error)
	FindByProviderOrderID(ctx context.Context, orderID string) (*entity.CheckoutIntent, error)

	// FindActiveByCart returns the most recent intent of the cart that is not terminal.
	FindActiveByCart(ctx context.Context, cartID uuid.UUID) (*entity.CheckoutIntent, error)

	// FindStale returns intents in the given states last updated before the cutoff, oldest first.
	FindStale(ctx context.Context, states []entity.CheckoutState, updatedBefore time.Time, limit int) ([]*entity.CheckoutIntent, error)
}
