package postgres

import (
	"context"
	"time"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists a new invoice. The provider order id must be unique.
func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// FindByID retrieves an invoice by its ID.
func (repo *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate loads the invoice with SELECT ... FOR UPDATE.
func (repo *invoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

// FindByOrderID retrieves an invoice by the provider order id.
func (repo *invoiceRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Invoice, error) {
	return repo.findOne(repo.db.WithContext(ctx), "order_id = ?", orderID)
}

func (repo *invoiceRepository) findOne(db *gorm.DB, query string, arg any) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := db.
		Where(query, arg).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// List returns the invoices matching the filter, newest first. Bounds are inclusive.
func (repo *invoiceRepository) List(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error) {
	query := repo.db.WithContext(ctx).Model(&model.InvoiceModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.MinAmount != nil {
		query = query.Where("total_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("total_amount <= ?", *filter.MaxAmount)
	}

	var invoiceModels []*model.InvoiceModel
	if err := query.Order("created_at DESC").Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return toInvoicesDomain(invoiceModels), nil
}

// Update writes the mutable columns of the invoice.
func (repo *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", invoice.ID).
		Select("customer", "items", "total_amount", "payment_status", "cart_id", "captured_at").
		Updates(invoiceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invoice")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// Delete removes the invoice.
func (repo *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InvoiceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete invoice")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// SumBetween totals invoices created in [from, to].
func (repo *invoiceRepository) SumBetween(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	var row struct {
		Total decimal.NullDecimal
		Count int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Select("SUM(total_amount) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&row).Error; err != nil {
		return repository.SalesTotals{}, errors.Wrap(err, "failed to sum invoices")
	}

	totals := repository.SalesTotals{Total: decimal.Zero, Count: row.Count}
	if row.Total.Valid {
		totals.Total = row.Total.Decimal
	}

	return totals, nil
}

// FindBetween lists invoices created in [from, to]. A zero from leaves the lower bound open.
func (repo *invoiceRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error) {
	query := repo.db.WithContext(ctx).Where("created_at <= ?", to)
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}

	var invoiceModels []*model.InvoiceModel
	if err := query.Order("created_at ASC").Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find invoices in range")
	}

	return toInvoicesDomain(invoiceModels), nil
}

// --- Mapper Functions ---

func toInvoicesDomain(invoiceModels []*model.InvoiceModel) []*entity.Invoice {
	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices
}

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:            data.ID,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		Customer:      toCustomerDomain(data.Customer),
		Items:         toLineItemsDomain(data.Items),
		TotalAmount:   data.TotalAmount,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CartID:        data.CartID,
		CreatedAt:     data.CreatedAt,
		CapturedAt:    data.CapturedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		Customer:      fromCustomerDomain(data.Customer),
		Items:         fromLineItemsDomain(data.Items),
		TotalAmount:   data.TotalAmount,
		PaymentStatus: string(data.PaymentStatus),
		CartID:        data.CartID,
		CreatedAt:     data.CreatedAt,
		CapturedAt:    data.CapturedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
