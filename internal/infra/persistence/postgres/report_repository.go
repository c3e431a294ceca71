package postgres

import (
	"context"
	"encoding/json"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Create stores a generated report.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM, err := fromReportDomain(report)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// List returns reports newest first. An empty type lists every type; limit <= 0 means no limit.
func (repo *reportRepository) List(ctx context.Context, reportType entity.ReportType, limit int) ([]*entity.Report, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if reportType != "" {
		query = query.Where("type = ?", string(reportType))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reportModels []*model.ReportModel
	if err := query.Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		report, err := toReportDomain(reportM)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) (*entity.Report, error) {
	report := &entity.Report{
		ID:          data.ID,
		Type:        entity.ReportType(data.Type),
		GeneratedBy: data.GeneratedBy,
		CreatedAt:   data.CreatedAt,
	}

	switch report.Type {
	case entity.ReportSales:
		var sales entity.SalesReport
		if err := json.Unmarshal(data.Data, &sales); err != nil {
			return nil, errors.Wrap(err, "failed to decode sales report")
		}
		report.Data = &sales
	case entity.ReportPerformance:
		var perf entity.PerformanceReport
		if err := json.Unmarshal(data.Data, &perf); err != nil {
			return nil, errors.Wrap(err, "failed to decode performance report")
		}
		report.Data = &perf
	default:
		report.Data = json.RawMessage(data.Data)
	}

	return report, nil
}

func fromReportDomain(data *entity.Report) (*model.ReportModel, error) {
	raw, err := json.Marshal(data.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode report data")
	}

	return &model.ReportModel{
		ID:          data.ID,
		Type:        string(data.Type),
		Data:        datatypes.JSON(raw),
		GeneratedBy: data.GeneratedBy,
		CreatedAt:   data.CreatedAt,
	}, nil
}
