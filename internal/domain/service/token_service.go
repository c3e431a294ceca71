package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the user and returns it with its expiry.
	GenerateAccessToken(userID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
