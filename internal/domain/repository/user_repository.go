// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhoneNumber is returned when the phone number is already registered.
	ErrDuplicatePhoneNumber = errors.New("phone number already registered")
)

// UserRepository defines the standard operations for user persistence.
// Users are always returned with their roles loaded.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhoneNumber retrieves a user by the login key.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user together with its role links.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies profile fields; roles are left untouched.
	Update(ctx context.Context, user *entity.User) error

	// ReplaceRoles overwrites the user's role links.
	ReplaceRoles(ctx context.Context, userID uuid.UUID, roles entity.Roles) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository manages the role reference data.
type RoleRepository interface {
	Count(ctx context.Context) (int64, error)

	// EnsureRoles inserts every missing role; existing rows are kept.
	EnsureRoles(ctx context.Context, roles entity.Roles) error
}
