package repository

import (
	"context"

	"trinity/internal/domain/entity"
)

// ReportRepository stores generated reports. Reports are never updated or deleted.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	List(ctx context.Context, reportType entity.ReportType, limit int) ([]*entity.Report, error)
}
