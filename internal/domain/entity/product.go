package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry, usually created from a nutrition lookup.
type Product struct {
	ID                     uuid.UUID       `json:"id"`
	Barcode                string          `json:"barcode,omitempty"`
	Name                   string          `json:"name"`
	Price                  decimal.Decimal `json:"price"`
	Brand                  string          `json:"brand"`
	Picture                string          `json:"picture"`
	Category               string          `json:"category"`
	NutritionalInformation map[string]any  `json:"nutritionalInformation"`
	AvailableQuantity      int             `json:"availableQuantity"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

// LineItem freezes a product at the moment it was added to a cart.
// Later catalog edits never reach carts or invoices that hold it.
type LineItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// NewLineItem snapshots the product with the given quantity.
func NewLineItem(p *Product, quantity int) LineItem {
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  quantity,
	}
}

// Subtotal is price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// LineItems is an ordered list of snapshots.
type LineItems []LineItem

// Total sums every line subtotal.
func (items LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}

	return total
}

// Equal reports whether both lists hold the same lines in the same order.
// Prices compare by value, so 25 and 25.00 match.
func (items LineItems) Equal(other LineItems) bool {
	if len(items) != len(other) {
		return false
	}
	for i, li := range items {
		o := other[i]
		if li.ProductID != o.ProductID || li.Name != o.Name || li.Quantity != o.Quantity || !li.Price.Equal(o.Price) {
			return false
		}
	}

	return true
}
