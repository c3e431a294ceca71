package service

import (
	"context"
	"errors"
)

// ErrBarcodeNotFound is returned by Lookup when the database has no product for the barcode.
var ErrBarcodeNotFound = errors.New("barcode not found")

// NutritionProduct is the catalog-ready result of a barcode lookup.
type NutritionProduct struct {
	Barcode                string         `json:"barcode"`
	Name                   string         `json:"name"`
	Brand                  string         `json:"brand"`
	Picture                string         `json:"picture"`
	Category               string         `json:"category"`
	NutritionalInformation map[string]any `json:"nutritionalInformation"`
}

// SearchQuery is a paged full text search, optionally narrowed by category.
type SearchQuery struct {
	Page     int
	PageSize int
	Terms    string
	Category string
}

// SearchHit is one search result.
type SearchHit struct {
	Code          string   `json:"code"`
	ProductName   string   `json:"product_name"`
	Brands        string   `json:"brands"`
	ImageURL      string   `json:"image_url"`
	CategoriesTag []string `json:"categories_tags"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Products   []SearchHit `json:"products"`
	Count      int         `json:"count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// NutritionLookup is the external nutritional-data source.
type NutritionLookup interface {
	Lookup(ctx context.Context, barcode string) (*NutritionProduct, error)
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
}

// LookupCache keeps barcode lookups close to the API.
type LookupCache interface {
	// Get returns false on a miss.
	Get(ctx context.Context, barcode string) (*NutritionProduct, bool, error)
	Set(ctx context.Context, barcode string, product *NutritionProduct) error
}
