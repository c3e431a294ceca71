package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(name, price string) *Product {
	return &Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Brand:    "brand",
		Category: "snacks",
	}
}

func TestRoles_Can(t *testing.T) {
	tests := []struct {
		name  string
		roles Roles
		cap   Capability
		want  bool
	}{
		{"user manages own cart", Roles{RoleUser}, CapCartManage, true},
		{"user cannot generate reports", Roles{RoleUser}, CapReportGenerate, false},
		{"user cannot read every invoice", Roles{RoleUser}, CapInvoiceReadAny, false},
		{"user cannot manage other carts", Roles{RoleUser}, CapCartManageAny, false},
		{"moderator cannot manage other carts", Roles{RoleModerator}, CapCartManageAny, false},
		{"admin manages any cart", Roles{RoleAdmin}, CapCartManageAny, true},
		{"moderator manages catalog", Roles{RoleModerator}, CapCatalogManage, true},
		{"moderator cannot manage users", Roles{RoleModerator}, CapUserManage, false},
		{"admin generates reports", Roles{RoleAdmin}, CapReportGenerate, true},
		{"mixed roles take the union", Roles{RoleUser, RoleAdmin}, CapInvoiceManage, true},
		{"no roles no capability", Roles{}, CapCatalogRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.Can(tt.cap))
		})
	}
}

func TestParseRoles(t *testing.T) {
	roles, bad, ok := ParseRoles([]string{"user", "admin", "user"})
	require.True(t, ok)
	assert.Empty(t, bad)
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)

	_, bad, ok = ParseRoles([]string{"user", "superuser"})
	assert.False(t, ok)
	assert.Equal(t, "superuser", bad)
}

func TestCart_AddThenRemoveRestoresItems(t *testing.T) {
	apple := newProduct("apple", "1.20")
	pear := newProduct("pear", "2.00")

	cart := &Cart{ID: uuid.New(), UserID: uuid.New()}
	cart.Add(apple, 1)
	cart.Add(pear, 2)
	before := append(LineItems{}, cart.Items...)

	cart.Add(apple, 3)
	removed := cart.Remove(apple.ID)

	require.True(t, removed)
	assert.Equal(t, before, cart.Items)
}

func TestCart_RemoveMissingProductIsNoop(t *testing.T) {
	cart := &Cart{}
	cart.Add(newProduct("apple", "1.00"), 1)

	assert.False(t, cart.Remove(uuid.New()))
	assert.Len(t, cart.Items, 1)
}

func TestCart_SnapshotIsFrozen(t *testing.T) {
	p := newProduct("apple", "1.00")
	cart := &Cart{}
	cart.Add(p, 1)

	p.Price = decimal.RequireFromString("9.99")
	p.Name = "renamed"

	assert.True(t, cart.Items[0].Price.Equal(decimal.RequireFromString("1.00")))
	assert.Equal(t, "apple", cart.Items[0].Name)
}

func TestLineItems_Total(t *testing.T) {
	items := LineItems{
		NewLineItem(newProduct("a", "1.25"), 2),
		NewLineItem(newProduct("b", "10.00"), 1),
	}

	assert.Equal(t, "12.50", items.Total().StringFixed(2))
}

func TestLineItems_Equal(t *testing.T) {
	milk := NewLineItem(newProduct("milk", "2.50"), 2)
	bread := NewLineItem(newProduct("bread", "5.00"), 1)

	rescaled := milk
	rescaled.Price = decimal.RequireFromString("2.5")
	doubledBread := bread
	doubledBread.Quantity = 2

	assert.True(t, LineItems{milk, bread}.Equal(LineItems{milk, bread}))
	assert.True(t, LineItems{milk}.Equal(LineItems{rescaled}))
	assert.False(t, LineItems{milk, bread}.Equal(LineItems{bread, milk}))
	assert.False(t, LineItems{milk}.Equal(LineItems{milk, bread}))
	// Same total, different lines.
	assert.False(t, LineItems{milk, bread}.Equal(LineItems{milk, milk}))
	assert.False(t, LineItems{bread, bread}.Equal(LineItems{doubledBread}))
}

func TestInvoice_TransitionIsForwardOnly(t *testing.T) {
	now := time.Now()
	inv := &Invoice{PaymentStatus: PaymentNotCompleted}

	require.True(t, inv.TransitionTo(PaymentCompleted, now))
	assert.True(t, inv.IsCompleted())
	require.NotNil(t, inv.CapturedAt)

	assert.False(t, inv.TransitionTo(PaymentNotCompleted, now))
	assert.Equal(t, PaymentCompleted, inv.PaymentStatus)

	assert.True(t, inv.TransitionTo(PaymentCompleted, now.Add(time.Hour)))
	assert.Equal(t, now, *inv.CapturedAt)

	assert.False(t, inv.TransitionTo(PaymentStatus("refunded"), now))
}

func TestCheckoutIntent_ReferenceID(t *testing.T) {
	id := uuid.MustParse("0190d7a4-2b1c-7d3e-8f00-123456789abc")
	intent := &CheckoutIntent{ID: id}

	assert.Equal(t, "0190d7a42b1c7d3e8f00123456789abc", intent.ReferenceID())
}

func TestCheckoutState(t *testing.T) {
	assert.True(t, CheckoutPendingPayment.IsOpen())
	assert.True(t, CheckoutCaptureFailed.IsOpen())
	assert.False(t, CheckoutCaptured.IsOpen())
	assert.True(t, CheckoutCaptureStarted.IsCapturing())
	assert.True(t, CheckoutCaptured.IsCapturing())
	assert.False(t, CheckoutCaptureFailed.IsCapturing())
	assert.Contains(t, ActiveCheckoutStates, CheckoutCaptureStarted)
	assert.Contains(t, ActiveCheckoutStates, CheckoutCaptured)
	assert.NotContains(t, ActiveCheckoutStates, CheckoutCompleted)
	assert.True(t, CheckoutCompleted.IsTerminal())
	assert.False(t, CheckoutCaptureStarted.IsTerminal())
}
