package postgres

import (
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	tracerName     = "trinity/postgres"
	spanInstanceID = "trinity:span"
)

// tracingPlugin opens one span per GORM statement.
type tracingPlugin struct {
	tracer trace.Tracer
}

func newTracingPlugin() gorm.Plugin {
	return &tracingPlugin{tracer: otel.Tracer(tracerName)}
}

func (p *tracingPlugin) Name() string {
	return "trinity:tracing"
}

func (p *tracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("trinity:before_"+h.op, p.before(h.op)); err != nil {
			return errors.Wrapf(err, "register before %s", h.op)
		}
		if err := h.after("trinity:after_"+h.op, p.after); err != nil {
			return errors.Wrapf(err, "register after %s", h.op)
		}
	}

	return nil
}

func (p *tracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}

		ctx, span := p.tracer.Start(db.Statement.Context, "gorm."+op,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "postgresql"),
				attribute.String("db.operation", op),
			),
		)
		db.Statement.Context = ctx
		db.InstanceSet(spanInstanceID, span)
	}
}

func (p *tracingPlugin) after(db *gorm.DB) {
	v, ok := db.InstanceGet(spanInstanceID)
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	if db.Statement != nil && db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
	}
}
