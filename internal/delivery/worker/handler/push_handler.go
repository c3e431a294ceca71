package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"trinity/config"
	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/constants"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed ID token for the given audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes checkout events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions sign their requests
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery, which gets 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.CheckoutEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse checkout event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	fillFromAttributes(&event, pushMsg.Message.Attributes)

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process checkout event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the X-Request-Id header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CheckoutEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// fillFromAttributes backfills identifiers that publishers also copy into message attributes
func fillFromAttributes(event *service.CheckoutEvent, attributes map[string]string) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = attributes[key]
		}
	}
	fill(&event.EventID, "event_id")
	fill(&event.EventType, "event_type")
	fill(&event.InvoiceID, "invoice_id")
	fill(&event.UserID, "user_id")
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.CheckoutEvent) error {
	switch event.EventType {
	case constants.EventPaymentCaptured:
		result, err := h.notificationUC.NotifyPaymentCaptured(ctx, event)
		if err != nil {
			// malformed events never succeed on redelivery
			if errors.Is(err, domainerrors.ErrValidationFailed) {
				return err
			}

			return &retryableError{err: err}
		}

		logger.Info("[Worker] Payment receipt pushed",
			slog.String("invoice_id", event.InvoiceID),
			slog.Int("devices", result.Devices),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
		)

		return nil
	default:
		logger.Debug("[Worker] Ignoring checkout event")

		return nil
	}
}

// verifyPubSubToken verifies the JWT Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
