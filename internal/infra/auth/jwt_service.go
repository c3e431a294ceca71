package auth

import (
	"time"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTTL = 24 * time.Hour

// jwtService signs HS256 access tokens.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

type accessClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed token carrying the user id and roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := accessClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return signed, expiresAt, nil
}

// ValidateToken checks signature and expiry and returns the parsed claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	return &service.Claims{
		UserID:           userID,
		Roles:            claims.Roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
