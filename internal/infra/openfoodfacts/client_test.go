package openfoodfacts

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(url string) *Client {
	return newClient(&config.OpenFoodFactsConfig{
		BaseURL:       url,
		UserAgent:     "trinity-test",
		LookupTimeout: 5 * time.Second,
		SearchTimeout: 5 * time.Second,
		RetryCount:    2,
		RetryWait:     10 * time.Millisecond,
	}, newDiscardLogger(), http.DefaultTransport)
}

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v0/product/3017620422003.json":
			assert.Equal(t, "trinity-test", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Nutella","brands":"Ferrero",` +
				`"image_url":"https://img/nutella.jpg","categories":"Spreads","nutriments":{"sugars_100g":56.3}}}`))
		default:
			_, _ = w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv.URL)

	product, err := c.Lookup(context.Background(), "3017620422003")
	require.NoError(t, err)
	assert.Equal(t, "Nutella", product.Name)
	assert.Equal(t, "Ferrero", product.Brand)
	assert.Equal(t, "Spreads", product.Category)
	assert.Equal(t, 56.3, product.NutritionalInformation["sugars_100g"])

	_, err = c.Lookup(context.Background(), "0000")
	assert.ErrorIs(t, err, service.ErrBarcodeNotFound)
}

func TestClient_SearchSendsCategoryFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "process", q.Get("action"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))
		assert.Equal(t, "choco", q.Get("search_terms"))
		assert.Equal(t, "categories", q.Get("tagtype_0"))
		assert.Equal(t, "snacks", q.Get("tag_0"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":25,"page":"2","page_size":10,"products":[{"code":"1","product_name":"Bar"}]}`))
	}))
	t.Cleanup(srv.Close)

	result, err := newTestClient(srv.URL).Search(context.Background(), service.SearchQuery{
		Page: 2, PageSize: 10, Terms: "choco", Category: "snacks",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, result.Count)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Bar", result.Products[0].ProductName)
}

func TestClient_SearchRetriesFailedAttempts(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusServiceUnavailable},
		{name: "client error", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(tt.status)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"count":0,"products":[]}`))
			}))
			t.Cleanup(srv.Close)

			result, err := newTestClient(srv.URL).Search(context.Background(), service.SearchQuery{})
			require.NoError(t, err)
			assert.Equal(t, int32(3), calls.Load())
			assert.Equal(t, 1, result.Page)
			assert.Equal(t, 20, result.PageSize)
			assert.Empty(t, result.Products)
		})
	}
}

func TestClient_SearchGivesUpAfterRetries(t *testing.T) {
	for _, status := range []int{http.StatusBadGateway, http.StatusBadRequest} {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(status)
		}))

		_, err := newTestClient(srv.URL).Search(context.Background(), service.SearchQuery{Terms: "x"})
		srv.Close()

		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load(), "status %d", status)
	}
}
