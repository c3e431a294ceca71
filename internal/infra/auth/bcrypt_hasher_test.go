package auth

import (
	"testing"

	"trinity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashNeverEqualsPlaintext(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, password := range []string{"secret", "StrongPass123!", "a"} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Check(password, hash))
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 6}})

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
