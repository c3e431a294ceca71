// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher with the configured cost, falling back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
