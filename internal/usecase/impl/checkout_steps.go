package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutSteps holds the saga steps shared by the checkout requests and the reconciler.
// Every step leaves the intent in a state the reconciler can resume from.
type checkoutSteps struct {
	txManager  repository.TransactionManager
	cartRepo   repository.CartRepository
	intentRepo repository.CheckoutIntentRepository
	publisher  service.EventPublisher
	now        func() time.Time
	logger     *slog.Logger
}

func (s *checkoutSteps) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// saveIntent records the new state of the intent.
func (s *checkoutSteps) saveIntent(ctx context.Context, intent *entity.CheckoutIntent, state entity.CheckoutState, cause error) error {
	intent.Advance(state, cause)
	if err := s.intentRepo.Update(ctx, intent); err != nil {
		return errors.Wrapf(err, "failed to move checkout intent to %s", state)
	}

	return nil
}

// openInvoice persists the pending invoice of an intent whose provider order exists
// and moves the intent to pending_payment, both in one transaction.
// An invoice already stored for the order is reused.
func (s *checkoutSteps) openInvoice(ctx context.Context, intent *entity.CheckoutIntent) (*entity.Invoice, error) {
	var invoice *entity.Invoice
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.InvoiceRepo()

		existing, err := invoiceRepo.FindByOrderID(ctx, intent.ProviderOrderID)
		switch {
		case err == nil:
			invoice = existing
		case errors.Is(err, repository.ErrInvoiceNotFound):
			cartID := intent.CartID
			invoice = &entity.Invoice{
				OrderID:       intent.ProviderOrderID,
				UserID:        intent.UserID,
				Customer:      intent.Customer,
				Items:         intent.Items,
				TotalAmount:   intent.Total,
				PaymentStatus: entity.PaymentNotCompleted,
				CartID:        &cartID,
			}
			if err := invoiceRepo.Create(ctx, invoice); err != nil {
				return errors.Wrap(err, "failed to create pending invoice")
			}
		default:
			return errors.Wrap(err, "failed to look up invoice of order")
		}

		intent.Advance(entity.CheckoutPendingPayment, nil)
		if err := repoFactory.CheckoutIntentRepo().Update(ctx, intent); err != nil {
			return errors.Wrap(err, "failed to move checkout intent to pending_payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// completeInvoice marks the invoice paid and the intent captured in one transaction.
func (s *checkoutSteps) completeInvoice(ctx context.Context, invoice *entity.Invoice, intent *entity.CheckoutIntent) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoice.TransitionTo(entity.PaymentCompleted, s.now())
		if err := repoFactory.InvoiceRepo().Update(ctx, invoice); err != nil {
			return errors.Wrap(err, "failed to complete invoice")
		}

		if intent == nil {
			return nil
		}

		intent.Advance(entity.CheckoutCaptured, nil)
		if err := repoFactory.CheckoutIntentRepo().Update(ctx, intent); err != nil {
			return errors.Wrap(err, "failed to move checkout intent to captured")
		}

		return nil
	})
}

// releaseCart deletes the paid cart and closes the intent. A failure leaves the intent
// captured for the reconciler and is reported to the caller.
func (s *checkoutSteps) releaseCart(ctx context.Context, invoice *entity.Invoice, intent *entity.CheckoutIntent) error {
	if invoice.CartID != nil {
		if err := s.cartRepo.Delete(ctx, *invoice.CartID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(err, "failed to delete paid cart")
		}
	}

	if intent == nil || intent.State == entity.CheckoutCompleted {
		return nil
	}

	return s.saveIntent(ctx, intent, entity.CheckoutCompleted, nil)
}

// publish emits a checkout event. Delivery failures are logged and never fail the checkout.
func (s *checkoutSteps) publish(ctx context.Context, eventType string, invoice *entity.Invoice) {
	event := &service.CheckoutEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		EventType:  eventType,
		InvoiceID:  invoice.ID.String(),
		OrderID:    invoice.OrderID,
		UserID:     invoice.UserID.String(),
		TotalValue: invoice.TotalAmount.StringFixed(2),
	}

	if err := s.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish checkout event",
			slog.String("event_type", eventType),
			slog.String("order_id", invoice.OrderID),
			slog.Any("error", err),
		)
	}
}

// publishCaptured is the event every completed capture emits.
func (s *checkoutSteps) publishCaptured(ctx context.Context, invoice *entity.Invoice) {
	s.publish(ctx, constants.EventPaymentCaptured, invoice)
}
