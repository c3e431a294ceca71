package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trinity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, tracing *config.TracingConfig) (Params, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Tracing: tracing}
	cfg.Env.ServiceName = "trinity-test"

	return Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNew_DisabledIsNoop(t *testing.T) {
	params, _ := newParams(t, &config.TracingConfig{Enabled: false})

	tp, err := New(params)

	require.NoError(t, err)
	assert.IsType(t, noop.TracerProvider{}, tp)
}

func TestNew_EnabledRecordsSpans(t *testing.T) {
	params, lc := newParams(t, &config.TracingConfig{Enabled: true})

	tp, err := New(params)

	require.NoError(t, err)
	require.IsType(t, &sdktrace.TracerProvider{}, tp)

	lc.RequireStart()
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
	lc.RequireStop()
}
