package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trinity/config"
	"trinity/internal/domain/constants"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/service"
	mockUsecase "trinity/internal/mocks/usecase"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(provider, env string) *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	return cfg
}

func pushBody(t *testing.T, event service.CheckoutEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.POST("/push", h.HandlePush)
	e.ServeHTTP(rec, req)

	return rec
}

func capturedEvent() service.CheckoutEvent {
	return service.CheckoutEvent{
		EventID:    uuid.NewString(),
		EventType:  constants.EventPaymentCaptured,
		InvoiceID:  uuid.NewString(),
		OrderID:    "ORDER-1",
		UserID:     uuid.NewString(),
		TotalValue: "50.00",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		event      service.CheckoutEvent
		setupMock  func(m *mockUsecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name:  "payment captured is delivered",
			event: capturedEvent(),
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().
					NotifyPaymentCaptured(mock.Anything, mock.MatchedBy(func(e *service.CheckoutEvent) bool { return e.OrderID == "ORDER-1" })).
					Return(&usecase.NotifyResult{Devices: 1, Sent: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "other event types are acknowledged",
			event: func() service.CheckoutEvent {
				e := capturedEvent()
				e.EventType = constants.EventOrderCreated

				return e
			}(),
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name:  "malformed event is acknowledged",
			event: capturedEvent(),
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().NotifyPaymentCaptured(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "bad user id"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "transient failure asks for redelivery",
			event: capturedEvent(),
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().NotifyPaymentCaptured(mock.Anything, mock.Anything).
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notificationUC := mockUsecase.NewMockNotificationUsecase(t)
			tt.setupMock(notificationUC)
			h := NewPushHandler(PushHandlerParams{
				Config:         newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop),
				Logger:         newDiscardLogger(),
				NotificationUC: notificationUC,
			})

			rec := doPush(h, pushBody(t, tt.event, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config:         newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop),
		Logger:         newDiscardLogger(),
		NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
	})

	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"%%%"}}`, nil).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := &PushHandler{}
	ctx := context.Background()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, &msg, &service.CheckoutEvent{RequestID: "from-payload"}))

	assert.Equal(t, "from-payload", h.extractRequestID(ctx, &PubSubMessage{}, &service.CheckoutEvent{RequestID: "from-payload"}))

	generated := h.extractRequestID(ctx, &PubSubMessage{}, &service.CheckoutEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	h := NewPushHandler(PushHandlerParams{
		Config:         newTestConfig(constants.PubSubProviderGoogle, "production"),
		Logger:         newDiscardLogger(),
		NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
	})
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	event := capturedEvent()
	event.EventType = constants.EventOrderCreated
	body := pushBody(t, event, nil)

	assert.Equal(t, http.StatusUnauthorized, doPush(h, body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doPush(h, body, http.Header{"Authorization": {"Bearer forged"}}).Code)
	assert.Equal(t, http.StatusOK, doPush(h, body, http.Header{"Authorization": {"Bearer good"}}).Code)
	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestPushHandler_HandlePush_AttributesBackfillEvent(t *testing.T) {
	event := capturedEvent()
	eventType, userID := event.EventType, event.UserID
	event.EventType = ""
	event.UserID = ""

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	notificationUC.EXPECT().
		NotifyPaymentCaptured(mock.Anything, mock.MatchedBy(func(e *service.CheckoutEvent) bool { return e.UserID == userID })).
		Return(&usecase.NotifyResult{}, nil)
	h := NewPushHandler(PushHandlerParams{
		Config:         newTestConfig(constants.PubSubProviderLocal, constants.EnvDevelop),
		Logger:         newDiscardLogger(),
		NotificationUC: notificationUC,
	})

	rec := doPush(h, pushBody(t, event, map[string]string{"event_type": eventType, "user_id": userID}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
