package handler

import (
	"log/slog"
	"net/http"
	"time"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/entity"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves profiles and user administration.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UserResponse is the public view of a user. The password hash never leaves the service.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	ZipCode     string    `json:"zipCode"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.BillingAddress.Address,
		ZipCode:     user.BillingAddress.ZipCode,
		City:        user.BillingAddress.City,
		Country:     user.BillingAddress.Country,
		Roles:       user.Roles.ToStrings(),
		CreatedAt:   user.CreatedAt,
	}
}

// UpdateProfileRequest represents a self-service profile edit. Empty fields are kept.
type UpdateProfileRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber string  `json:"phoneNumber"`
	Password    string  `json:"password" validate:"omitempty,min=6"`
	Address     *string `json:"address"`
	ZipCode     *string `json:"zipCode"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
}

// SetRolesRequest replaces the roles of a user.
type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

// GetMe returns the caller's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// GetUser returns one user
func (h *UserHandler) GetUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListUsers returns every user visible to the caller
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateProfile edits the caller's own profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}
	if req.Address != nil || req.ZipCode != nil || req.City != nil || req.Country != nil {
		current, err := h.userUC.GetMe(c.Request().Context(), userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		address := current.BillingAddress
		overwrite(&address.Address, req.Address)
		overwrite(&address.ZipCode, req.ZipCode)
		overwrite(&address.City, req.City)
		overwrite(&address.Country, req.Country)
		input.BillingAddress = &address
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// SetRoles replaces the roles of a user
func (h *UserHandler) SetRoles(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req SetRolesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid roles input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userUC.SetRoles(c.Request().Context(), id, req.Roles)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully.")
}

func overwrite(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
