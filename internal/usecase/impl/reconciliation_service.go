package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trinity/config"
	"trinity/internal/domain/entity"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStaleAfter         = 10 * time.Minute
	defaultReconcileBatchSize = 50
)

type reconciliationService struct {
	*checkoutSteps

	invoiceRepo repository.InvoiceRepository
	gateway     service.PaymentGateway
	staleAfter  time.Duration
	batchSize   int
}

// ReconciliationServiceParams holds dependencies for ReconciliationService, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	Config      *config.Config
	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	InvoiceRepo repository.InvoiceRepository
	IntentRepo  repository.CheckoutIntentRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewReconciliationService creates the checkout reconciler.
func NewReconciliationService(params ReconciliationServiceParams) usecase.ReconciliationUsecase {
	staleAfter, batchSize := defaultStaleAfter, defaultReconcileBatchSize
	if params.Config != nil && params.Config.Worker != nil {
		if params.Config.Worker.StaleAfter > 0 {
			staleAfter = params.Config.Worker.StaleAfter
		}
		if params.Config.Worker.BatchSize > 0 {
			batchSize = params.Config.Worker.BatchSize
		}
	}

	return &reconciliationService{
		checkoutSteps: &checkoutSteps{
			txManager:  params.TxManager,
			cartRepo:   params.CartRepo,
			intentRepo: params.IntentRepo,
			publisher:  params.Publisher,
			now:        time.Now,
			logger:     params.Logger,
		},
		invoiceRepo: params.InvoiceRepo,
		gateway:     params.Gateway,
		staleAfter:  staleAfter,
		batchSize:   batchSize,
	}
}

// Reconcile resumes intents that have not moved for staleAfter. One failing intent
// does not stop the pass.
func (srv *reconciliationService) Reconcile(ctx context.Context) (*usecase.ReconcileResult, error) {
	cutoff := srv.now().Add(-srv.staleAfter)

	intents, err := srv.intentRepo.FindStale(ctx, entity.ReconcilableStates, cutoff, srv.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stale checkouts")
	}

	result := &usecase.ReconcileResult{Scanned: len(intents)}
	for _, intent := range intents {
		if err := srv.reconcileIntent(ctx, intent); err != nil {
			result.Failed++
			srv.log(ctx).Warn("Failed to reconcile checkout",
				slog.Any("intentID", intent.ID),
				slog.String("state", string(intent.State)),
				slog.Any("error", err),
			)

			continue
		}
		result.Resolved++
	}

	if result.Scanned > 0 {
		srv.log(ctx).Info("Reconciliation pass finished",
			slog.Int("scanned", result.Scanned),
			slog.Int("resolved", result.Resolved),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

func (srv *reconciliationService) reconcileIntent(ctx context.Context, intent *entity.CheckoutIntent) error {
	switch intent.State {
	case entity.CheckoutStarted:
		// The provider order id is recorded together with order_created, so none was obtained.
		return srv.saveIntent(ctx, intent, entity.CheckoutAbandoned, errors.New("no provider order recorded"))

	case entity.CheckoutOrderCreated:
		_, err := srv.openInvoice(ctx, intent)

		return err

	case entity.CheckoutCaptureStarted, entity.CheckoutCaptured:
		return srv.settleCapture(ctx, intent)

	default:
		return fmt.Errorf("state %s is not reconcilable", intent.State)
	}
}

// settleCapture asks the provider for the order outcome and applies it.
func (srv *reconciliationService) settleCapture(ctx context.Context, intent *entity.CheckoutIntent) error {
	invoice, err := srv.invoiceRepo.FindByOrderID(ctx, intent.ProviderOrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load invoice of intent")
	}

	if intent.State == entity.CheckoutCaptured || invoice.IsCompleted() {
		return srv.releaseCart(ctx, invoice, intent)
	}

	order, err := srv.gateway.GetOrder(ctx, intent.ProviderOrderID)
	if err != nil {
		return errors.Wrap(err, "failed to query provider order")
	}

	if order.Status != service.PaymentStatusCompleted {
		return srv.saveIntent(ctx, intent, entity.CheckoutCaptureFailed, fmt.Errorf("provider reported status %s", order.Status))
	}

	if err := srv.completeInvoice(ctx, invoice, intent); err != nil {
		return err
	}
	srv.publishCaptured(ctx, invoice)

	return srv.releaseCart(ctx, invoice, intent)
}
