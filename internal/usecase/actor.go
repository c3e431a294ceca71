// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller a use case runs on behalf of.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// NewActor builds an actor from a loaded user.
func NewActor(user *entity.User) Actor {
	return Actor{UserID: user.ID, Roles: user.Roles}
}

// Can reports whether the actor holds the capability.
func (a Actor) Can(capability entity.Capability) bool {
	return a.Roles.Can(capability)
}

// CanAccess reports whether the actor owns the resource or holds the override capability.
func (a Actor) CanAccess(ownerID uuid.UUID, override entity.Capability) bool {
	return a.UserID == ownerID || a.Can(override)
}
