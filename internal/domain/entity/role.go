// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer.
	RoleUser Role = "user"
	// RoleModerator can curate the catalog.
	RoleModerator Role = "moderator"
	// RoleAdmin has every capability.
	RoleAdmin Role = "admin"
)

// AllRoles is the reference data seeded at startup.
var AllRoles = Roles{RoleUser, RoleModerator, RoleAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Can reports whether any of the roles grants the capability.
func (rs Roles) Can(capability Capability) bool {
	for _, r := range rs {
		if slices.Contains(RoleCapabilities[r], capability) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}

// ParseRoles converts []string to Roles and returns the first unknown name, if any.
func ParseRoles(ss []string) (Roles, string, bool) {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if !role.IsValid() {
			return nil, s, false
		}
		if !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result, "", true
}
