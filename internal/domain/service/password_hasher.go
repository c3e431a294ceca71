// Package service defines interfaces for core, stateless domain logic
// and for the external systems the use cases talk to.
package service

// PasswordHasher hashes and verifies passwords. A hash never equals its plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
