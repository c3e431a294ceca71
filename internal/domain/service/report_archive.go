package service

import (
	"context"

	"trinity/internal/domain/entity"
)

// ReportArchive exports generated reports to object storage.
type ReportArchive interface {
	// Store writes the report and returns the object key.
	Store(ctx context.Context, report *entity.Report) (string, error)
}
