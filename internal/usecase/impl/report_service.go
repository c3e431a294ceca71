package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"trinity/config"
	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	salesWindow          = 30 * 24 * time.Hour
	topSellingLimit      = 5
	topRevenueLimit      = 10
	defaultLowStock      = 10
	defaultReportListCap = 50
)

type reportService struct {
	reportRepo        repository.ReportRepository
	invoiceRepo       repository.InvoiceRepository
	productRepo       repository.ProductRepository
	archive           service.ReportArchive
	lowStockThreshold int
	now               func() time.Time
	logger            *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Config      *config.Config
	ReportRepo  repository.ReportRepository
	InvoiceRepo repository.InvoiceRepository
	ProductRepo repository.ProductRepository
	Archive     service.ReportArchive
	Logger      *slog.Logger
}

// NewReportService creates the reporting service.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	threshold := defaultLowStock
	if params.Config != nil && params.Config.Report != nil && params.Config.Report.LowStockThreshold > 0 {
		threshold = params.Config.Report.LowStockThreshold
	}

	return &reportService{
		reportRepo:        params.ReportRepo,
		invoiceRepo:       params.InvoiceRepo,
		productRepo:       params.ProductRepo,
		archive:           params.Archive,
		lowStockThreshold: threshold,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateReport computes, stores and archives a report.
func (srv *reportService) GenerateReport(ctx context.Context, reportType string, generatedBy uuid.UUID) (*entity.Report, error) {
	kind := entity.ReportType(reportType)
	if !kind.IsValid() {
		return nil, domainerrors.ErrUnknownReportType.WrapMessage(reportType)
	}

	var (
		data any
		err  error
	)
	switch kind {
	case entity.ReportSales:
		data, err = srv.salesReport(ctx)
	case entity.ReportPerformance:
		data, err = srv.performanceReport(ctx)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute %s report", kind)
	}

	report := &entity.Report{
		Type:        kind,
		Data:        data,
		GeneratedBy: generatedBy,
	}
	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to store report")
	}

	if key, err := srv.archive.Store(ctx, report); err != nil {
		srv.log(ctx).Warn("Failed to archive report", slog.Any("reportID", report.ID), slog.Any("error", err))
	} else if key != "" {
		srv.log(ctx).Debug("Report archived", slog.Any("reportID", report.ID), slog.String("key", key))
	}

	srv.log(ctx).Info("Report generated", slog.String("type", string(kind)), slog.Any("reportID", report.ID))

	return report, nil
}

func (srv *reportService) ListReports(ctx context.Context, reportType string, limit int) ([]*entity.Report, error) {
	kind := entity.ReportType(reportType)
	if kind != "" && !kind.IsValid() {
		return nil, domainerrors.ErrUnknownReportType.WrapMessage(reportType)
	}
	if limit <= 0 {
		limit = defaultReportListCap
	}

	reports, err := srv.reportRepo.List(ctx, kind, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// salesReport covers the trailing 30 days.
func (srv *reportService) salesReport(ctx context.Context) (*entity.SalesReport, error) {
	end := srv.now()
	start := end.Add(-salesWindow)

	totals, err := srv.invoiceRepo.SumBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	invoices, err := srv.invoiceRepo.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	average := decimal.Zero
	if totals.Count > 0 {
		average = totals.Total.Div(decimal.NewFromInt(totals.Count)).Round(2)
	}

	lines := aggregateLines(invoices)
	slices.SortStableFunc(lines, func(a, b *productLine) int {
		return cmp.Compare(b.quantity, a.quantity)
	})

	top := make([]entity.ProductQuantity, 0, topSellingLimit)
	for _, l := range lines[:min(len(lines), topSellingLimit)] {
		top = append(top, entity.ProductQuantity{ProductID: l.productID, Name: l.name, Quantity: l.quantity})
	}

	return &entity.SalesReport{
		PeriodStart:       start,
		PeriodEnd:         end,
		TotalSales:        totals.Total,
		NumberOfInvoices:  totals.Count,
		AverageOrderValue: average,
		TopProducts:       top,
	}, nil
}

// performanceReport ranks all-time revenue. Categories come from the catalog by product id,
// falling back to the category frozen in the line item for products since deleted.
func (srv *reportService) performanceReport(ctx context.Context) (*entity.PerformanceReport, error) {
	lowStock, err := srv.productRepo.FindLowStock(ctx, srv.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	invoices, err := srv.invoiceRepo.FindBetween(ctx, time.Time{}, srv.now())
	if err != nil {
		return nil, err
	}

	lines := aggregateLines(invoices)

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if l.productID != uuid.Nil {
			ids = append(ids, l.productID)
		}
	}
	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	categories := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		categories[p.ID] = p.Category
	}

	report := &entity.PerformanceReport{
		LowStockProducts:  make([]entity.LowStockProduct, 0, len(lowStock)),
		TopProducts:       make([]entity.ProductRevenue, 0, topRevenueLimit),
		CategoryBreakdown: []entity.CategoryRevenue{},
	}
	for _, p := range lowStock {
		report.LowStockProducts = append(report.LowStockProducts, entity.LowStockProduct{
			ProductID:         p.ID,
			Name:              p.Name,
			AvailableQuantity: p.AvailableQuantity,
		})
	}

	byCategory := make(map[string]*entity.CategoryRevenue)
	for _, l := range lines {
		category, ok := categories[l.productID]
		if !ok {
			category = l.category
		}
		c, ok := byCategory[category]
		if !ok {
			c = &entity.CategoryRevenue{Category: category, Revenue: decimal.Zero}
			byCategory[category] = c
		}
		c.Quantity += l.quantity
		c.Revenue = c.Revenue.Add(l.revenue)
	}
	for _, c := range byCategory {
		report.CategoryBreakdown = append(report.CategoryBreakdown, *c)
	}
	slices.SortFunc(report.CategoryBreakdown, func(a, b entity.CategoryRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}

		return cmp.Compare(a.Category, b.Category)
	})

	slices.SortStableFunc(lines, func(a, b *productLine) int {
		return b.revenue.Cmp(a.revenue)
	})
	for _, l := range lines[:min(len(lines), topRevenueLimit)] {
		report.TopProducts = append(report.TopProducts, entity.ProductRevenue{
			ProductID: l.productID,
			Name:      l.name,
			Quantity:  l.quantity,
			Revenue:   l.revenue,
		})
	}

	return report, nil
}

type productLine struct {
	productID uuid.UUID
	name      string
	category  string
	quantity  int
	revenue   decimal.Decimal
}

// lineKey identifies a product across invoices. Lines without a product id, from manual
// entries, are told apart by name.
type lineKey struct {
	productID uuid.UUID
	name      string
}

func keyOf(li entity.LineItem) lineKey {
	if li.ProductID == uuid.Nil {
		return lineKey{name: li.Name}
	}

	return lineKey{productID: li.ProductID}
}

// aggregateLines sums line items per product in first-seen order.
func aggregateLines(invoices []*entity.Invoice) []*productLine {
	index := make(map[lineKey]*productLine)
	var lines []*productLine
	for _, inv := range invoices {
		for _, li := range inv.Items {
			key := keyOf(li)
			l, ok := index[key]
			if !ok {
				l = &productLine{productID: li.ProductID, name: li.Name, category: li.Category, revenue: decimal.Zero}
				index[key] = l
				lines = append(lines, l)
			}
			l.quantity += li.Quantity
			l.revenue = l.revenue.Add(li.Subtotal())
		}
	}

	return lines
}
