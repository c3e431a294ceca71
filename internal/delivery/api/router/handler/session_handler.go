package handler

import (
	"net/http"
	"slices"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionHandler reports on the caller's resolved identity.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SessionResponse is the identity the auth middleware resolved for the request.
type SessionResponse struct {
	UserID       string              `json:"userId"`
	Roles        []string            `json:"roles"`
	Capabilities []entity.Capability `json:"capabilities"`
}

// Session returns the caller's id, roles and the capabilities they grant
func (h *SessionHandler) Session(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User not found in context")
	}

	var caps []entity.Capability
	for _, role := range actor.Roles {
		for _, capability := range entity.RoleCapabilities[role] {
			if !slices.Contains(caps, capability) {
				caps = append(caps, capability)
			}
		}
	}
	slices.Sort(caps)

	return response.Success(c, http.StatusOK, SessionResponse{
		UserID:       actor.UserID.String(),
		Roles:        actor.Roles.ToStrings(),
		Capabilities: caps,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
