package handler

import (
	"net/http"
	"testing"

	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/service"
	mockUsecase "trinity/internal/mocks/usecase"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestProductHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/products", h.ListProducts)
	e.POST("/api/products/:barcode", h.AddFromBarcode)
	e.PUT("/api/products/:id", h.UpdateProduct)
	e.GET("/api/products/:id/qrcode", h.ProductLabel)
	e.GET("/api/off", h.SearchCatalog)

	return e, productUC
}

func TestProductHandler_AddFromBarcode(t *testing.T) {
	e, productUC := createTestProductHandler(t)

	productUC.EXPECT().
		AddFromBarcode(mock.Anything, &usecase.AddFromBarcodeInput{Barcode: "3017620422003", Quantity: 12, Price: decimal.RequireFromString("4.99")}).
		Return(nil, domainerrors.ErrBarcodeNotFound)

	rec := perform(e, http.MethodPost, "/api/products/3017620422003", `{"quantity":12,"price":4.99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BARCODE_NOT_FOUND")
}

func TestProductHandler_AddFromBarcode_NegativePrice(t *testing.T) {
	e, _ := createTestProductHandler(t)

	rec := perform(e, http.MethodPost, "/api/products/3017620422003", `{"quantity":1,"price":-2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"price"`)
}

func TestProductHandler_UpdateProduct_Partial(t *testing.T) {
	e, productUC := createTestProductHandler(t)

	id := uuid.New()
	productUC.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Name == nil && in.AvailableQuantity != nil && *in.AvailableQuantity == 3
		})).
		Return(nil, nil)

	rec := perform(e, http.MethodPut, "/api/products/"+id.String(), `{"availableQuantity":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ProductLabel(t *testing.T) {
	e, productUC := createTestProductHandler(t)

	id := uuid.New()
	png := []byte("\x89PNG\r\n")
	productUC.EXPECT().ProductLabel(mock.Anything, id).Return(png, nil)

	rec := perform(e, http.MethodGet, "/api/products/"+id.String()+"/qrcode", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProductHandler_SearchCatalog(t *testing.T) {
	e, productUC := createTestProductHandler(t)

	productUC.EXPECT().
		SearchCatalog(mock.Anything, service.SearchQuery{Page: 2, PageSize: 10, Terms: "nutella", Category: "spreads"}).
		Return(&service.SearchResult{Count: 1, Page: 2, PageSize: 10}, nil).Once()
	productUC.EXPECT().
		SearchCatalog(mock.Anything, service.SearchQuery{Page: 1}).
		Return(nil, domainerrors.ErrUpstream).Once()

	rec := perform(e, http.MethodGet, "/api/off?page=2&pageSize=10&search=nutella&category=spreads", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = perform(e, http.MethodGet, "/api/off?page=abc", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestProductHandler_ListProducts(t *testing.T) {
	e, productUC := createTestProductHandler(t)

	productUC.EXPECT().ListProducts(mock.Anything, 3, 25).Return(&usecase.ProductPage{Page: 3, PageSize: 25}, nil)

	rec := perform(e, http.MethodGet, "/api/products?page=3&pageSize=25", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
