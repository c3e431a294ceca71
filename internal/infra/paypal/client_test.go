package paypal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakePayPal struct {
	tokenCalls  atomic.Int32
	lastCreate  createOrderBody
	lastRequest atomic.Value
	server      *httptest.Server
}

func newFakePayPal(t *testing.T, captureStatus string) *fakePayPal {
	t.Helper()

	f := &fakePayPal{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"name":"AUTHENTICATION_FAILURE","message":"bad credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
	})
	mux.HandleFunc("POST /v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		f.lastRequest.Store(r.Header.Get(requestIDHeader))
		_ = json.NewDecoder(r.Body).Decode(&f.lastCreate)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"CREATED"}`))
	})
	mux.HandleFunc("POST /v2/checkout/orders/{id}/capture", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "missing" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND","message":"order missing"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","status":"` + captureStatus + `"}`))
	})
	mux.HandleFunc("GET /v2/checkout/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","status":"APPROVED"}`))
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func newTestClient(f *fakePayPal) *Client {
	return newClient(&config.PayPalConfig{
		BaseURL:      f.server.URL,
		ClientID:     "client",
		ClientSecret: "secret",
		BrandName:    "Trinity",
		Currency:     "USD",
		ReturnURL:    "https://shop.example/return",
		Timeout:      5 * time.Second,
	}, newDiscardLogger(), http.DefaultTransport)
}

func TestClient_CreateOrder(t *testing.T) {
	f := newFakePayPal(t, service.PaymentStatusCompleted)
	c := newTestClient(f)

	order, err := c.CreateOrder(context.Background(), &service.PaymentOrderRequest{
		IdempotencyKey: "intent-1",
		ReferenceID:    "abc123",
		Items: []service.PaymentItem{
			{Name: "Nutella", UnitPrice: decimal.RequireFromString("3.5"), Quantity: 2},
		},
		Total: decimal.RequireFromString("7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)
	assert.Equal(t, "intent-1", f.lastRequest.Load())

	require.Len(t, f.lastCreate.PurchaseUnits, 1)
	unit := f.lastCreate.PurchaseUnits[0]
	assert.Equal(t, "CAPTURE", f.lastCreate.Intent)
	assert.Equal(t, "abc123", unit.ReferenceID)
	assert.Equal(t, "7.00", unit.Amount.Value)
	assert.Equal(t, "7.00", unit.Amount.Breakdown.ItemTotal.Value)
	assert.Equal(t, "3.50", unit.Items[0].UnitAmount.Value)
	assert.Equal(t, "2", unit.Items[0].Quantity)
	assert.Equal(t, "PAY_NOW", f.lastCreate.ApplicationContext.UserAction)
	assert.Equal(t, "BILLING", f.lastCreate.ApplicationContext.LandingPage)
}

func TestClient_TokenIsCached(t *testing.T) {
	f := newFakePayPal(t, service.PaymentStatusCompleted)
	c := newTestClient(f)

	_, err := c.GetOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	_, err = c.GetOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.tokenCalls.Load())

	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = c.GetOrder(context.Background(), "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.tokenCalls.Load())
}

func TestClient_CaptureOrder(t *testing.T) {
	f := newFakePayPal(t, service.PaymentStatusCompleted)
	c := newTestClient(f)

	order, err := c.CaptureOrder(context.Background(), "ORDER-1", "intent-1")
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStatusCompleted, order.Status)

	_, err = c.CaptureOrder(context.Background(), "missing", "intent-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_NOT_FOUND")
}

func TestClient_BadCredentials(t *testing.T) {
	f := newFakePayPal(t, service.PaymentStatusCompleted)
	c := newTestClient(f)
	c.cfg.ClientSecret = "wrong"

	_, err := c.GetOrder(context.Background(), "ORDER-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}
