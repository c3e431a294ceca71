package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trinity/internal/delivery/api/response"
	"trinity/internal/delivery/api/validator"
	domainerrors "trinity/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "wrapped client error keeps details",
			err:         errors.Wrap(domainerrors.ErrTotalMismatch.WithDetails("cart total is 12.00"), "create order"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "TOTAL_MISMATCH",
			wantDetails: true,
		},
		{
			name:       "upstream error hides details",
			err:        domainerrors.ErrUpstream.WithDetails("paypal: 503"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("owner mismatch"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, body.Error.Message, "pq:")
		})
	}
}

func TestErrorMiddleware_ValidationFields(t *testing.T) {
	type signIn struct {
		PhoneNumber string `json:"phoneNumber" validate:"required"`
	}

	err := validator.New().Validate(&signIn{})
	status, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, fmt.Sprint(body.Error.Details), "phoneNumber")
}
