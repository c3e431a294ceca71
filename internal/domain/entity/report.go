package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportType names the kind of aggregation.
type ReportType string

const (
	ReportSales       ReportType = "sales"
	ReportPerformance ReportType = "performance"
)

// IsValid checks the type against the known values.
func (t ReportType) IsValid() bool {
	return t == ReportSales || t == ReportPerformance
}

// Report is an immutable, generated aggregation.
type Report struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Data        any        `json:"data"`
	GeneratedBy uuid.UUID  `json:"generatedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SalesReport covers a trailing window of invoices.
type SalesReport struct {
	PeriodStart       time.Time         `json:"periodStart"`
	PeriodEnd         time.Time         `json:"periodEnd"`
	TotalSales        decimal.Decimal   `json:"totalSales"`
	NumberOfInvoices  int64             `json:"numberOfInvoices"`
	AverageOrderValue decimal.Decimal   `json:"averageOrderValue"`
	TopProducts       []ProductQuantity `json:"topProducts"`
}

// ProductQuantity is a product ranked by units sold.
type ProductQuantity struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}

// PerformanceReport ranks catalog and category performance.
type PerformanceReport struct {
	LowStockProducts  []LowStockProduct `json:"lowStockProducts"`
	TopProducts       []ProductRevenue  `json:"topProducts"`
	CategoryBreakdown []CategoryRevenue `json:"categoryBreakdown"`
}

type LowStockProduct struct {
	ProductID         uuid.UUID `json:"productId"`
	Name              string    `json:"name"`
	AvailableQuantity int       `json:"availableQuantity"`
}

type ProductRevenue struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type CategoryRevenue struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}
