package main

import (
	"context"
	"log/slog"
	"os"

	"trinity/config"
	"trinity/internal/delivery"
	"trinity/internal/delivery/api"
	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/router/handler"
	"trinity/internal/infra/archive"
	"trinity/internal/infra/auth"
	"trinity/internal/infra/cache"
	logs "trinity/internal/infra/log"
	"trinity/internal/infra/openfoodfacts"
	"trinity/internal/infra/paypal"
	"trinity/internal/infra/persistence/postgres"
	"trinity/internal/infra/pubsub"
	"trinity/internal/infra/qrcode"
	"trinity/internal/infra/tracing"
	"trinity/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Bootstrap,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		tracing.New,
		postgres.New,
		cache.NewLookupCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewInvoiceRepository,
			postgres.NewCheckoutIntentRepository,
			postgres.NewReportRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			openfoodfacts.NewClient,
			paypal.NewClient,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeServiceFromConfig,
			archive.NewReportArchive,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewInvoiceService,
			impl.NewReportService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewInvoiceHandler,
			handler.NewReportHandler,
			handler.NewDeviceHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
