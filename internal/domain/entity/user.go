// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the back office. The phone number is the login key.
type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	PhoneNumber    string
	PasswordHash   string
	BillingAddress BillingAddress
	Roles          Roles
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BillingAddress is embedded in the user and copied into invoices as part of the customer snapshot.
type BillingAddress struct {
	Address string `json:"address"`
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Customer is the frozen view of a user stored on an invoice.
type Customer struct {
	UserID         uuid.UUID      `json:"userId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	PhoneNumber    string         `json:"phoneNumber"`
	BillingAddress BillingAddress `json:"billingAddress"`
}

// Snapshot freezes the customer data for an invoice.
func (u *User) Snapshot() Customer {
	return Customer{
		UserID:         u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		BillingAddress: u.BillingAddress,
	}
}
