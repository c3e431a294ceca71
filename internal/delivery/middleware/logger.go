package middleware

import (
	"log/slog"
	"time"

	"trinity/config"
	deliverycontext "trinity/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
// Outside debug mode only server errors are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// let the error handler pick the status before it is logged
			c.Error(err)
		}

		status := c.Response().Status
		if m.debug || status >= 500 {
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", fields...)
}
