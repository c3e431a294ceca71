package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/service"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog and the nutrition database proxy.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is a direct catalog entry.
type CreateProductRequest struct {
	Barcode                string          `json:"barcode"`
	Name                   string          `json:"name" validate:"required"`
	Price                  decimal.Decimal `json:"price" validate:"gte=0"`
	Brand                  string          `json:"brand"`
	Picture                string          `json:"picture" validate:"omitempty,url"`
	Category               string          `json:"category"`
	NutritionalInformation map[string]any  `json:"nutritionalInformation"`
	AvailableQuantity      int             `json:"availableQuantity" validate:"gte=0"`
}

// AddFromBarcodeRequest carries the shop's own stock and price for a looked-up product.
type AddFromBarcodeRequest struct {
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// UpdateProductRequest is a partial catalog edit.
type UpdateProductRequest struct {
	Name                   *string          `json:"name" validate:"omitempty,min=1"`
	Price                  *decimal.Decimal `json:"price"`
	Brand                  *string          `json:"brand"`
	Picture                *string          `json:"picture"`
	Category               *string          `json:"category"`
	NutritionalInformation map[string]any   `json:"nutritionalInformation"`
	AvailableQuantity      *int             `json:"availableQuantity" validate:"omitempty,gte=0"`
}

// ListProducts returns a page of the catalog
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := h.productUC.ListProducts(c.Request().Context(), queryInt(c, "page", 1), queryInt(c, "pageSize", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetProduct returns one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct adds a product without a barcode lookup
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Barcode:                req.Barcode,
		Name:                   req.Name,
		Price:                  req.Price,
		Brand:                  req.Brand,
		Picture:                req.Picture,
		Category:               req.Category,
		NutritionalInformation: req.NutritionalInformation,
		AvailableQuantity:      req.AvailableQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// AddFromBarcode looks the barcode up in the nutrition database and stores the product
func (h *ProductHandler) AddFromBarcode(c echo.Context) error {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		return response.BadRequest(c, "INVALID_BARCODE", "Barcode is required")
	}

	var req AddFromBarcodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUC.AddFromBarcode(c.Request().Context(), &usecase.AddFromBarcodeInput{
		Barcode:  barcode,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct edits a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &usecase.UpdateProductInput{
		Name:                   req.Name,
		Price:                  req.Price,
		Brand:                  req.Brand,
		Picture:                req.Picture,
		Category:               req.Category,
		NutritionalInformation: req.NutritionalInformation,
		AvailableQuantity:      req.AvailableQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// ProductLabel renders the product's QR shelf label
func (h *ProductHandler) ProductLabel(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.productUC.ProductLabel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SearchCatalog proxies a paged search to the nutrition database
func (h *ProductHandler) SearchCatalog(c echo.Context) error {
	result, err := h.productUC.SearchCatalog(c.Request().Context(), service.SearchQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 0),
		Terms:    c.QueryParam("search"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
