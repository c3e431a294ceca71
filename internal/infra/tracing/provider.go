// Package tracing installs the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"
	"os"

	"trinity/config"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// Params defines the dependencies of the tracer provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New installs a stdout-exporting provider when tracing is enabled, and a no-op one otherwise.
// Spans are started through otel.Tracer, so callers never depend on the returned value.
func New(params Params) (trace.TracerProvider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if params.Config.Tracing == nil || !params.Config.Tracing.Enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)

		return tp, nil
	}

	opts := []stdouttrace.Option{stdouttrace.WithWriter(os.Stdout)}
	if params.Config.Tracing.PrettyPrint {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stdout trace exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", params.Config.Env.ServiceName),
			attribute.String("deployment.environment", params.Config.Env.Env),
		)),
	)
	otel.SetTracerProvider(tp)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	params.Logger.Info("Tracing enabled", slog.Bool("prettyPrint", params.Config.Tracing.PrettyPrint))

	return tp, nil
}
