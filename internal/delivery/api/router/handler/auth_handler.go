package handler

import (
	"log/slog"
	"net/http"

	"trinity/config"
	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/constants"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration and sign-in.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	FirstName   string   `json:"firstName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	PhoneNumber string   `json:"phoneNumber" validate:"required"`
	Password    string   `json:"password" validate:"required,min=6"`
	Address     string   `json:"address"`
	ZipCode     string   `json:"zipCode"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Roles       []string `json:"roles"`
}

// SignInRequest represents the sign-in credentials
type SignInRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// SignInResponse is the profile and bearer token returned on sign-in.
type SignInResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"roles"`
	Token       string   `json:"token"`
}

// signInFailure keeps the null accessToken web clients check after a wrong password.
type signInFailure struct {
	AccessToken *string             `json:"accessToken"`
	Message     string              `json:"message"`
	Error       *response.ErrorInfo `json:"error"`
	Meta        *response.MetaInfo  `json:"meta"`
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
		City:        req.City,
		Country:     req.Country,
		Roles:       req.Roles,
	}
	if actor, ok := middleware.GetActor(c); ok {
		input.Registrar = &actor
	}

	_, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, "User was registered successfully!")
}

// SignIn checks the credentials, sets the accessToken cookie and returns the token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, signInFailure{
			Message: "Invalid Password!",
			Error: &response.ErrorInfo{
				Code:    domainerrors.ErrInvalidCredentials.ErrorCode(),
				Message: domainerrors.ErrInvalidCredentials.Message(),
			},
			Meta: response.Meta(c),
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.AccessTokenCookie,
		Value:    output.AccessToken,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})

	user := output.User

	return response.Success(c, http.StatusOK, SignInResponse{
		ID:          user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Roles:       user.Roles.ToStrings(),
		Token:       output.AccessToken,
	})
}

// SignOut clears the accessToken cookie.
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     constants.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})

	return response.Message(c, http.StatusOK, "You've been signed out!")
}
