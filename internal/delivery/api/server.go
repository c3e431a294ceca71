package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"trinity/config"
	"trinity/internal/delivery"
	apimiddleware "trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/router"
	"trinity/internal/delivery/api/validator"
	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/delivery/middleware"
	"trinity/internal/domain/lifecycle"
	"trinity/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	RouterParams   router.RouterParams
}

// NewServer builds the public REST API.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, params.TracerProvider)

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho configures the middleware chain and error handling shared by the server and handler tests.
func NewEcho(cfg *config.Config, logger *slog.Logger, tp trace.TracerProvider) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover first to catch panics early
	e.Use(echomiddleware.Recover())

	// 2. Server span, so request logs can carry the trace id
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.Env.ServiceName, otelhttp.WithTracerProvider(tp))))

	// 3. Request ID before the logger
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 4. Access log
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 5. CORS; the sign-in cookie needs credentials
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORS.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, deliverycontext.HeaderXRequestID,
		},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))

	// 6. Request body size limit
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
