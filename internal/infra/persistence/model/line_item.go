package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRecord is the JSON shape of a product snapshot stored in carts, invoices and checkout intents.
type LineItemRecord struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// CustomerRecord is the JSON shape of the customer snapshot.
type CustomerRecord struct {
	UserID      uuid.UUID `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	ZipCode     string    `json:"zipCode"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
}
