package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trinity/config"
	"trinity/internal/domain/constants"
	"trinity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	event := &service.CheckoutEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		EventType:  constants.EventPaymentCaptured,
		InvoiceID:  "inv-1",
		OrderID:    "ORDER-1",
		UserID:     "user-1",
		TotalValue: "12.00",
	}

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishCheckoutEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.EventPaymentCaptured, received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.CheckoutEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishCheckoutEvent(context.Background(), &service.CheckoutEvent{EventID: "evt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newDiscardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
