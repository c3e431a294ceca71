package middleware

import (
	"log/slog"
	"strings"

	"trinity/internal/delivery/api/response"
	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUser  = "auth.user"
	contextKeyActor = "auth.actor"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware authenticates requests and guards routes by capability.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the access token from the Authorization header or the
// accessToken cookie. The user is reloaded on every request so role changes apply at once.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return response.Unauthorized(c, domainerrors.ErrMissingToken.ErrorCode(), domainerrors.ErrMissingToken.Message())
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetUser(c, user)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), logger)))

		return next(c)
	}
}

// OptionalAuthenticate attaches the caller when a valid access token is sent and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return next(c)
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring invalid access token on public route", slog.Any("error", err))

			return next(c)
		}

		SetUser(c, user)

		return next(c)
	}
}

// RequireCapability rejects callers whose roles do not grant the capability.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrMissingToken.ErrorCode(), domainerrors.ErrMissingToken.Message())
			}
			if !actor.Can(capability) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Missing capability "+string(capability))
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	cookie, err := c.Cookie(constants.AccessTokenCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SetUser attaches the authenticated user and the actor derived from it.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
	c.Set(contextKeyActor, usecase.NewActor(user))
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(contextKeyActor).(usecase.Actor)

	return actor, ok
}

// GetUser returns the authenticated user as loaded for this request.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the id of the authenticated user.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}

	return actor.UserID, true
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return nil, false
	}

	return actor.Roles, true
}
