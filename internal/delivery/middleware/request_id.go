package middleware

import (
	"log/slog"

	deliverycontext "trinity/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger scoped to it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable and generates one otherwise.
// The id is echoed in the response header and stored in both the echo and request contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		attrs := []any{slog.String("request_id", requestID)}
		// otelhttp runs first, so the server span is already in the context
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
			attrs = append(attrs, slog.String("trace_id", spanCtx.TraceID().String()))
		}
		reqLogger := m.logger.With(attrs...)

		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
