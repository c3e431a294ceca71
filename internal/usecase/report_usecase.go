package usecase

import (
	"context"

	"trinity/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportUsecase generates and lists aggregated reports.
type ReportUsecase interface {
	// GenerateReport computes a sales or performance report and stores it.
	GenerateReport(ctx context.Context, reportType string, generatedBy uuid.UUID) (*entity.Report, error)

	// ListReports returns the newest reports first. An empty type lists every type.
	ListReports(ctx context.Context, reportType string, limit int) ([]*entity.Report, error)
}
