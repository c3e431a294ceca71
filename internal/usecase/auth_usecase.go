package usecase

import (
	"context"
	"time"

	"trinity/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
	Address     string
	ZipCode     string
	City        string
	Country     string
	// Roles defaults to user when empty.
	Roles []string
	// Registrar is the signed-in caller creating the account, nil on self-registration.
	// Roles beyond user need a registrar holding user:manage.
	Registrar *Actor
}

// SignInInput defines the credentials of a sign-in attempt.
type SignInInput struct {
	PhoneNumber string
	Password    string
}

// SignInOutput returns the access token issued after a successful sign-in.
type SignInOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase covers registration, sign-in and token resolution.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Authenticate resolves an access token to the current state of its user.
	// A token whose user no longer exists is rejected.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
