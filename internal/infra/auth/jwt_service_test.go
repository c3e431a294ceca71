package auth

import (
	"testing"
	"time"

	"trinity/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 24 * time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	token, expiresAt, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, _, err := impl.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
