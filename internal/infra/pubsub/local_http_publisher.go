package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"trinity/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher posts Pub/Sub push envelopes straight to the worker, for development.
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(localPushTimeout).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)),
		logger: logger,
	}
}

// PublishCheckoutEvent wraps the event in a push envelope and posts it to the worker.
func (p *localHTTPPublisher) PublishCheckoutEvent(ctx context.Context, event *service.CheckoutEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/checkout-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = checkoutAttributes(event)

	req := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(pushMsg)
	if event.RequestID != "" {
		req.SetHeader("X-Request-Id", event.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode())
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
