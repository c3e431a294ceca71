package handler

import (
	"net/http"
	"testing"

	"trinity/internal/domain/entity"
	mockUsecase "trinity/internal/mocks/usecase"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestInvoiceHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockInvoiceUsecase) {
	invoiceUC := mockUsecase.NewMockInvoiceUsecase(t)
	h := NewInvoiceHandler(InvoiceHandlerParams{InvoiceUC: invoiceUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/invoices", h.CreateInvoice)
	e.PUT("/api/invoices/:id", h.UpdateInvoice)

	return e, invoiceUC
}

func TestInvoiceHandler_CreateInvoice_LineItems(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name      string
		products  string
		wantField string
	}{
		{name: "missing product id", products: `[{"name":"Milk","price":1,"quantity":2}]`, wantField: "productId"},
		{name: "zero quantity", products: `[{"productId":"` + productID.String() + `","name":"Milk","price":1,"quantity":0}]`, wantField: "quantity"},
		{name: "free item", products: `[{"productId":"` + productID.String() + `","name":"Milk","price":0,"quantity":1}]`, wantField: "price"},
		{name: "unnamed item", products: `[{"productId":"` + productID.String() + `","price":1,"quantity":1}]`, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestInvoiceHandler(t)

			rec := perform(e, http.MethodPost, "/api/invoices",
				`{"userId":"`+userID.String()+`","orderID":"MANUAL-1","total":2,"products":`+tt.products+`}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.wantField+`"`)
		})
	}
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	e, invoiceUC := createTestInvoiceHandler(t)

	userID := uuid.New()
	productID := uuid.New()
	invoiceUC.EXPECT().
		CreateInvoice(mock.Anything, mock.MatchedBy(func(in *usecase.CreateInvoiceInput) bool {
			return len(in.Items) == 1 && in.Items[0].ProductID == productID && in.Items[0].Quantity == 2
		})).
		Return(&entity.Invoice{ID: uuid.New()}, nil)

	rec := perform(e, http.MethodPost, "/api/invoices",
		`{"userId":"`+userID.String()+`","orderID":"MANUAL-1","total":2,"products":[{"productId":"`+productID.String()+`","name":"Milk","price":1,"quantity":2}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInvoiceHandler_UpdateInvoice_ValidatesLines(t *testing.T) {
	e, _ := createTestInvoiceHandler(t)

	rec := perform(e, http.MethodPut, "/api/invoices/"+uuid.NewString(), `{"products":[{"name":"Bread","price":2,"quantity":5}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"productId"`)

	rec = perform(e, http.MethodPut, "/api/invoices/"+uuid.NewString(), `{"paymentStatus":"refunded"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
