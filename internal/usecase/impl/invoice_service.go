package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type invoiceService struct {
	txManager   repository.TransactionManager
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	now         func() time.Time
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InvoiceRepo repository.InvoiceRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		txManager:   params.TxManager,
		invoiceRepo: params.InvoiceRepo,
		userRepo:    params.UserRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *invoiceService) ListInvoices(ctx context.Context, actor usecase.Actor, input *usecase.ListInvoicesInput) ([]*entity.Invoice, error) {
	filter := entity.InvoiceFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		MinAmount: input.MinAmount,
		MaxAmount: input.MaxAmount,
	}
	if !actor.Can(entity.CapInvoiceReadAny) {
		owner := actor.UserID
		filter.UserID = &owner
	}

	invoices, err := srv.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

func (srv *invoiceService) GetInvoice(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapInvoiceError(err, "failed to find invoice")
	}

	if !actor.CanAccess(invoice.UserID, entity.CapInvoiceReadAny) {
		return nil, domainerrors.ErrForbidden.WrapMessage("invoice belongs to another user")
	}

	return invoice, nil
}

// CreateInvoice records an invoice entered by hand, snapshotting the customer.
func (srv *invoiceService) CreateInvoice(ctx context.Context, input *usecase.CreateInvoiceInput) (*entity.Invoice, error) {
	orderID := strings.TrimSpace(input.OrderID)
	if orderID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order id is required")
	}

	status := input.PaymentStatus
	if status == "" {
		status = entity.PaymentNotCompleted
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status " + string(status))
	}

	total := input.Total
	if total.IsZero() {
		total = input.Items.Total()
	}
	if total.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total must not be negative")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("invoice customer does not exist")
		}

		return nil, errors.Wrap(err, "failed to load invoice customer")
	}

	invoice := &entity.Invoice{
		OrderID:       orderID,
		UserID:        user.ID,
		Customer:      user.Snapshot(),
		Items:         input.Items,
		TotalAmount:   total,
		PaymentStatus: entity.PaymentNotCompleted,
	}
	invoice.TransitionTo(status, srv.now())

	if err := srv.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, mapInvoiceError(err, "failed to create invoice")
	}

	srv.log(ctx).Info("Invoice created", slog.Any("invoiceID", invoice.ID), slog.String("orderID", orderID))

	return invoice, nil
}

// UpdateInvoice edits the invoice under a row lock, so a capture committing meanwhile
// is never overwritten with the stale status.
func (srv *invoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input *usecase.UpdateInvoiceInput) (*entity.Invoice, error) {
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment status " + string(*input.PaymentStatus))
	}
	if input.Total != nil && input.Total.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total must not be negative")
	}

	var updated *entity.Invoice
	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		invoiceRepo := txRepos.InvoiceRepo()

		invoice, err := invoiceRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapInvoiceError(err, "failed to find invoice")
		}

		if input.PaymentStatus != nil && !invoice.TransitionTo(*input.PaymentStatus, srv.now()) {
			return domainerrors.ErrStatusRegression.WrapMessage("failed to update invoice")
		}
		if input.Items != nil {
			invoice.Items = input.Items
		}
		if input.Total != nil {
			invoice.TotalAmount = *input.Total
		}

		if err := invoiceRepo.Update(ctx, invoice); err != nil {
			return mapInvoiceError(err, "failed to update invoice")
		}
		updated = invoice

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *invoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := srv.invoiceRepo.Delete(ctx, id); err != nil {
		return mapInvoiceError(err, "failed to delete invoice")
	}

	srv.log(ctx).Info("Invoice deleted", slog.Any("invoiceID", id))

	return nil
}

func mapInvoiceError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrInvoiceNotFound):
		return domainerrors.ErrInvoiceNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateOrderID):
		return domainerrors.ErrInvoiceAlreadyExists.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
