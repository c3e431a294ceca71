// Package paypal implements the payment gateway on the PayPal Orders v2 REST API.
package paypal

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"trinity/config"
	"trinity/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	tokenPath         = "/v1/oauth2/token"
	ordersPath        = "/v2/checkout/orders"
	tokenRefreshSkew  = time.Minute
	requestIDHeader   = "PayPal-Request-Id"
	preferHeader      = "Prefer"
	preferRepresented = "return=representation"
)

// Client talks to PayPal with client-credentials OAuth. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	cfg    *config.PayPalConfig
	logger *slog.Logger
	now    func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewClient is the constructor for the PayPal gateway.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return newClient(cfg.PayPal, logger, otelhttp.NewTransport(http.DefaultTransport))
}

func newClient(cfg *config.PayPalConfig, logger *slog.Logger, transport http.RoundTripper) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetTransport(transport).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type amount struct {
	money
	Breakdown *breakdown `json:"breakdown,omitempty"`
}

type breakdown struct {
	ItemTotal money `json:"item_total"`
}

type item struct {
	Name       string `json:"name"`
	UnitAmount money  `json:"unit_amount"`
	Quantity   string `json:"quantity"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Amount      amount `json:"amount"`
	Description string `json:"description,omitempty"`
	Items       []item `json:"items"`
}

type applicationContext struct {
	BrandName   string `json:"brand_name"`
	LandingPage string `json:"landing_page"`
	UserAction  string `json:"user_action"`
	ReturnURL   string `json:"return_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
}

type createOrderBody struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
}

// CreateOrder creates a CAPTURE intent order. Retries with the same idempotency key return the same order.
func (c *Client) CreateOrder(ctx context.Context, req *service.PaymentOrderRequest) (*service.PaymentOrder, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	currency := c.cfg.Currency
	items := make([]item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, item{
			Name:       it.Name,
			UnitAmount: money{CurrencyCode: currency, Value: it.UnitPrice.StringFixed(2)},
			Quantity:   strconv.Itoa(it.Quantity),
		})
	}
	total := money{CurrencyCode: currency, Value: req.Total.StringFixed(2)}

	body := createOrderBody{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: req.ReferenceID,
			Amount:      amount{money: total, Breakdown: &breakdown{ItemTotal: total}},
			Description: "My purchase",
			Items:       items,
		}},
		ApplicationContext: applicationContext{
			BrandName:   c.cfg.BrandName,
			LandingPage: "BILLING",
			UserAction:  "PAY_NOW",
			ReturnURL:   c.cfg.ReturnURL,
			CancelURL:   c.cfg.CancelURL,
		},
	}

	var out orderResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader(requestIDHeader, req.IdempotencyKey).
		SetHeader(preferHeader, preferRepresented).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post(ordersPath)
	if err != nil {
		return nil, errors.Wrap(err, "paypal create order request failed")
	}
	if resp.IsError() {
		return nil, apiError("create order", resp.StatusCode(), apiErr)
	}

	c.logger.DebugContext(ctx, "PayPal order created",
		slog.String("orderID", out.ID),
		slog.String("status", out.Status),
	)

	return &service.PaymentOrder{ID: out.ID, Status: out.Status}, nil
}

// CaptureOrder captures an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID, idempotencyKey string) (*service.PaymentOrder, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var out orderResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader(requestIDHeader, idempotencyKey).
		SetHeader(preferHeader, preferRepresented).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{}).
		SetResult(&out).
		SetError(&apiErr).
		SetPathParam("id", orderID).
		Post(ordersPath + "/{id}/capture")
	if err != nil {
		return nil, errors.Wrap(err, "paypal capture request failed")
	}
	if resp.IsError() {
		return nil, apiError("capture order", resp.StatusCode(), apiErr)
	}

	return &service.PaymentOrder{ID: out.ID, Status: out.Status}, nil
}

// GetOrder reads the current state of an order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*service.PaymentOrder, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var out orderResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&apiErr).
		SetPathParam("id", orderID).
		Get(ordersPath + "/{id}")
	if err != nil {
		return nil, errors.Wrap(err, "paypal get order request failed")
	}
	if resp.IsError() {
		return nil, apiError("get order", resp.StatusCode(), apiErr)
	}

	return &service.PaymentOrder{ID: out.ID, Status: out.Status}, nil
}

// token returns a cached access token, fetching a new one shortly before expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt.Add(-tokenRefreshSkew)) {
		return c.accessToken, nil
	}

	var out tokenResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&out).
		SetError(&apiErr).
		Post(tokenPath)
	if err != nil {
		return "", errors.Wrap(err, "paypal token request failed")
	}
	if resp.IsError() {
		return "", apiError("token", resp.StatusCode(), apiErr)
	}
	if out.AccessToken == "" {
		return "", errors.New("paypal token response has no access token")
	}

	c.accessToken = out.AccessToken
	c.expiresAt = c.now().Add(time.Duration(out.ExpiresIn) * time.Second)

	return c.accessToken, nil
}

func apiError(op string, status int, body errorResponse) error {
	return errors.Errorf("paypal %s failed: status=%d name=%s message=%s debug_id=%s",
		op, status, body.Name, body.Message, body.DebugID)
}
