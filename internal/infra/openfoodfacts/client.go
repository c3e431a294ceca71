// Package openfoodfacts looks up products and nutritional data on the Open Food Facts API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultPageSize = 20
	searchFields    = "code,product_name,brands,image_url,categories_tags"
)

// Client implements service.NutritionLookup.
type Client struct {
	lookup *resty.Client
	search *resty.Client
	logger *slog.Logger
}

// NewClient is the constructor for the Open Food Facts client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.NutritionLookup {
	return newClient(cfg.OpenFoodFacts, logger, otelhttp.NewTransport(http.DefaultTransport))
}

func newClient(cfg *config.OpenFoodFactsConfig, logger *slog.Logger, transport http.RoundTripper) *Client {
	base := func() *resty.Client {
		c := resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTransport(transport).
			SetHeader("Accept", "application/json")
		if cfg.UserAgent != "" {
			c.SetHeader("User-Agent", cfg.UserAgent)
		}

		return c
	}

	lookup := base()
	if cfg.LookupTimeout > 0 {
		lookup.SetTimeout(cfg.LookupTimeout)
	}

	// Search is slow upstream; it gets a longer timeout and retries every failed attempt alike.
	search := base().
		SetTimeout(cfg.SearchTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.IsError()
		})

	return &Client{lookup: lookup, search: search, logger: logger}
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string         `json:"product_name"`
		Brands      string         `json:"brands"`
		ImageURL    string         `json:"image_url"`
		Categories  string         `json:"categories"`
		Nutriments  map[string]any `json:"nutriments"`
	} `json:"product"`
}

type searchResponse struct {
	Products []service.SearchHit `json:"products"`
	Count    json.Number         `json:"count"`
	Page     json.Number         `json:"page"`
	PageSize json.Number         `json:"page_size"`
}

// Lookup fetches one product by barcode. A status other than 1 means unknown barcode.
func (c *Client) Lookup(ctx context.Context, barcode string) (*service.NutritionProduct, error) {
	var out productResponse
	resp, err := c.lookup.R().
		SetContext(ctx).
		SetPathParam("barcode", barcode).
		SetResult(&out).
		Get("/api/v0/product/{barcode}.json")
	if err != nil {
		return nil, errors.Wrap(err, "open food facts lookup failed")
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, service.ErrBarcodeNotFound
	}
	if resp.IsError() {
		return nil, errors.Errorf("open food facts lookup failed: status=%d", resp.StatusCode())
	}
	if out.Status != 1 {
		return nil, service.ErrBarcodeNotFound
	}

	return &service.NutritionProduct{
		Barcode:                barcode,
		Name:                   out.Product.ProductName,
		Brand:                  out.Product.Brands,
		Picture:                out.Product.ImageURL,
		Category:               out.Product.Categories,
		NutritionalInformation: out.Product.Nutriments,
	}, nil
}

// Search runs a paged full text search, narrowed to a category when one is given.
func (c *Client) Search(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	params := map[string]string{
		"action":       "process",
		"json":         "true",
		"page":         strconv.Itoa(page),
		"page_size":    strconv.Itoa(pageSize),
		"search_terms": query.Terms,
		"fields":       searchFields,
	}
	if query.Category != "" {
		params["tagtype_0"] = "categories"
		params["tag_contains_0"] = "contains"
		params["tag_0"] = query.Category
	}

	var out searchResponse
	resp, err := c.search.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/cgi/search.pl")
	if err != nil {
		c.logger.WarnContext(ctx, "Open Food Facts search failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch products from Open Food Facts")
	}
	if resp.IsError() {
		return nil, errors.Errorf("failed to fetch products from Open Food Facts: status=%d", resp.StatusCode())
	}

	count := numberOr(out.Count, 0)
	result := &service.SearchResult{
		Products:   out.Products,
		Count:      count,
		Page:       numberOr(out.Page, 1),
		PageSize:   numberOr(out.PageSize, pageSize),
		TotalPages: int(math.Ceil(float64(count) / float64(pageSize))),
	}
	if result.Products == nil {
		result.Products = []service.SearchHit{}
	}

	return result, nil
}

// numberOr reads a field the API sends either as a number or as a numeric string.
func numberOr(n json.Number, fallback int) int {
	if n == "" {
		return fallback
	}
	v, err := n.Int64()
	if err != nil || v == 0 {
		return fallback
	}

	return int(v)
}
