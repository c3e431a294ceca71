package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/validator"
	"trinity/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// asUser stands in for the auth middleware.
func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetUser(c, user)

			return next(c)
		}
	}
}

func perform(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
