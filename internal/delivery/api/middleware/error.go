package middleware

import (
	"log/slog"
	"net/http"

	"trinity/internal/delivery/api/response"
	"trinity/internal/delivery/api/validator"
	deliverycontext "trinity/internal/delivery/context"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, http.StatusBadRequest,
			domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
