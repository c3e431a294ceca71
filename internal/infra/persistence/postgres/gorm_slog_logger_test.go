package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"trinity/config"
	deliverycontext "trinity/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewTextHandler(&base, &slog.HandlerOptions{Level: slog.LevelDebug}))
	scopedLogger := slog.New(slog.NewTextHandler(&scoped, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-1"))

	l := newGormSlogLogger(baseLogger, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("fast query is silent at warn level", func(t *testing.T) {
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, base.String())
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, base.String())
	})

	t.Run("errors go to the request scoped logger", func(t *testing.T) {
		ctx := deliverycontext.WithLogger(context.Background(), scopedLogger)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, base.String())
		assert.Contains(t, scoped.String(), "GORM query failed")
		assert.Contains(t, scoped.String(), "request_id=req-1")
		assert.Contains(t, scoped.String(), "boom")
	})

	t.Run("slow query warns", func(t *testing.T) {
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, base.String(), "GORM slow query")
	})
}
