package usecase

import (
	"context"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds self-service profile changes. Empty fields are left unchanged.
type UpdateProfileInput struct {
	FirstName      string
	LastName       string
	PhoneNumber    string
	Password       string
	BillingAddress *entity.BillingAddress
}

// UserUsecase defines profile and account administration.
type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetUser returns the user when the actor is that user or manages users.
	// Anyone else gets a not found error.
	GetUser(ctx context.Context, actor Actor, id uuid.UUID) (*entity.User, error)

	// ListUsers returns every user to user managers and only the caller otherwise.
	ListUsers(ctx context.Context, actor Actor) ([]*entity.User, error)

	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	SetRoles(ctx context.Context, userID uuid.UUID, roles []string) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
