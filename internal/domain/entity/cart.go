package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart holds line item snapshots for its owner. Each user has at most one cart.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Items     LineItems `json:"products"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the user owns the cart.
func (c *Cart) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// Add appends a snapshot of the product.
func (c *Cart) Add(p *Product, quantity int) {
	c.Items = append(c.Items, NewLineItem(p, quantity))
}

// Remove drops the most recently added line for the product, so Add followed by
// Remove restores the previous item list. It reports whether anything was removed.
func (c *Cart) Remove(productID uuid.UUID) bool {
	for i := len(c.Items) - 1; i >= 0; i-- {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
