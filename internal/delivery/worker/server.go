package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"trinity/config"
	"trinity/internal/delivery"
	"trinity/internal/delivery/middleware"
	"trinity/internal/delivery/worker/handler"
	"trinity/internal/domain/lifecycle"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg         *config.Config
	logger      *slog.Logger
	server      *echo.Echo
	reconcileUC usecase.ReconciliationUsecase

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc               fx.Lifecycle
	Cfg              *config.Config
	Logger           *slog.Logger
	TracerProvider   trace.TracerProvider
	PushHandler      *handler.PushHandler
	ReconcileHandler *handler.ReconcileHandler
	ReconcileUC      usecase.ReconciliationUsecase
}

// NewServer creates the worker: a Pub/Sub push endpoint plus the periodic checkout reconciler
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:         params.Cfg,
		logger:      params.Logger,
		server:      e,
		reconcileUC: params.ReconcileUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Tracing, so the request ID middleware can pick up the trace ID
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(
		params.Cfg.Env.ServiceName+"-worker",
		otelhttp.WithTracerProvider(params.TracerProvider),
	)))

	// 3. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 4. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	// On-demand pass for external schedulers
	e.POST("/reconcile", params.ReconcileHandler.HandleReconcile)

	return e
}

// Serve starts the reconcile loop and then blocks on the HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.reconcileLoop(loopCtx, s.cfg.Worker.ReconcileInterval)
	}()

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) reconcileLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reconcileOnce(ctx)
		}
	}
}

func (s *workerServer) reconcileOnce(ctx context.Context) {
	result, err := s.reconcileUC.Reconcile(ctx)
	if err != nil {
		s.logger.Error("[Worker] Scheduled reconciliation failed", slog.Any("error", err))

		return
	}
	if result.Scanned > 0 {
		s.logger.Info("[Worker] Scheduled reconciliation finished",
			slog.Int("scanned", result.Scanned),
			slog.Int("resolved", result.Resolved),
			slog.Int("failed", result.Failed),
		)
	}
}

// stop halts the reconcile loop and gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	if s.cancel != nil {
		s.cancel()
	}
	err := s.server.Shutdown(shutdownCtx)
	s.wg.Wait()

	return errors.WithStack(err)
}
