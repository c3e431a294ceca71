package usecase

import (
	"context"

	"trinity/internal/domain/entity"
	"trinity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput is a direct catalog entry.
type CreateProductInput struct {
	Barcode                string
	Name                   string
	Price                  decimal.Decimal
	Brand                  string
	Picture                string
	Category               string
	NutritionalInformation map[string]any
	AvailableQuantity      int
}

// UpdateProductInput is a partial catalog edit. Nil fields are left unchanged.
type UpdateProductInput struct {
	Name                   *string
	Price                  *decimal.Decimal
	Brand                  *string
	Picture                *string
	Category               *string
	NutritionalInformation map[string]any
	AvailableQuantity      *int
}

// AddFromBarcodeInput adds a looked-up product with the shop's own stock and price.
type AddFromBarcodeInput struct {
	Barcode  string
	Quantity int
	Price    decimal.Decimal
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context, page, pageSize int) (*ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// AddFromBarcode looks the barcode up in the nutrition database and stores the result.
	AddFromBarcode(ctx context.Context, input *AddFromBarcodeInput) (*entity.Product, error)

	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SearchCatalog proxies a paged search to the nutrition database.
	SearchCatalog(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error)

	// ProductLabel renders the product's QR shelf label as PNG.
	ProductLabel(ctx context.Context, id uuid.UUID) ([]byte, error)
}
