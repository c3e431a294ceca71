package postgres

import (
	"testing"
	"time"

	"trinity/internal/domain/entity"
	"trinity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceMapping_KeepsSnapshots(t *testing.T) {
	cartID := uuid.New()
	capturedAt := time.Now().UTC()
	invoice := &entity.Invoice{
		ID:      uuid.New(),
		OrderID: "5O190127TN364715T",
		UserID:  uuid.New(),
		Customer: entity.Customer{
			FirstName:      "Ada",
			PhoneNumber:    "0600000000",
			BillingAddress: entity.BillingAddress{City: "Paris", Country: "FR"},
		},
		Items: entity.LineItems{
			{ProductID: uuid.New(), Name: "Nutella", Price: decimal.RequireFromString("3.99"), Quantity: 2},
		},
		TotalAmount:   decimal.RequireFromString("7.98"),
		PaymentStatus: entity.PaymentCompleted,
		CartID:        &cartID,
		CapturedAt:    &capturedAt,
	}

	got := toInvoiceDomain(fromInvoiceDomain(invoice))

	assert.Equal(t, invoice.Customer, got.Customer)
	require.Len(t, got.Items, 1)
	assert.True(t, invoice.Items[0].Price.Equal(got.Items[0].Price))
	assert.Equal(t, invoice.PaymentStatus, got.PaymentStatus)
	assert.Equal(t, &cartID, got.CartID)
}

func TestProductMapping_EmptyBarcodeIsNull(t *testing.T) {
	m := fromProductDomain(&entity.Product{Name: "Bread"})
	assert.Nil(t, m.Barcode)
	assert.Equal(t, "", toProductDomain(m).Barcode)

	m = fromProductDomain(&entity.Product{Name: "Bread", Barcode: "3017620422003"})
	require.NotNil(t, m.Barcode)
	assert.Equal(t, "3017620422003", *m.Barcode)
}

func TestReportMapping_DecodesTypedData(t *testing.T) {
	report := &entity.Report{
		Type: entity.ReportSales,
		Data: &entity.SalesReport{
			TotalSales:       decimal.RequireFromString("120.50"),
			NumberOfInvoices: 3,
		},
		GeneratedBy: uuid.New(),
	}

	m, err := fromReportDomain(report)
	require.NoError(t, err)

	got, err := toReportDomain(m)
	require.NoError(t, err)

	sales, ok := got.Data.(*entity.SalesReport)
	require.True(t, ok)
	assert.True(t, sales.TotalSales.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, int64(3), sales.NumberOfInvoices)
}

func TestUserMapping_RolesFromJoin(t *testing.T) {
	m := &model.UserModel{
		ID:          uuid.New(),
		PhoneNumber: "0611111111",
		City:        "Lyon",
		Roles:       []model.RoleModel{{Name: "user"}, {Name: "admin"}},
	}

	u := toUserDomain(m)

	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, u.Roles)
	assert.Equal(t, "Lyon", u.BillingAddress.City)
}
