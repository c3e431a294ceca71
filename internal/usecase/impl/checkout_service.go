package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const checkoutTracerName = "trinity/usecase/checkout"

type checkoutService struct {
	*checkoutSteps

	userRepo    repository.UserRepository
	invoiceRepo repository.InvoiceRepository
	gateway     service.PaymentGateway
	tracer      trace.Tracer
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CartRepo       repository.CartRepository
	InvoiceRepo    repository.InvoiceRepository
	IntentRepo     repository.CheckoutIntentRepository
	Gateway        service.PaymentGateway
	Publisher      service.EventPublisher
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

// NewCheckoutService creates the payment saga orchestrator.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		checkoutSteps: &checkoutSteps{
			txManager:  params.TxManager,
			cartRepo:   params.CartRepo,
			intentRepo: params.IntentRepo,
			publisher:  params.Publisher,
			now:        time.Now,
			logger:     params.Logger,
		},
		userRepo:    params.UserRepo,
		invoiceRepo: params.InvoiceRepo,
		gateway:     params.Gateway,
		tracer:      params.TracerProvider.Tracer(checkoutTracerName),
	}
}

// CreateOrder freezes the cart into a checkout intent, creates the provider order keyed by
// the intent id and opens the pending invoice.
func (srv *checkoutService) CreateOrder(ctx context.Context, actor usecase.Actor, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	ctx, span := srv.tracer.Start(ctx, "checkout.CreateOrder", trace.WithAttributes(
		attribute.String("cart.id", input.CartID.String()),
	))
	defer span.End()

	output, err := srv.createOrder(ctx, actor, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create order failed")

		return nil, err
	}
	span.SetAttributes(attribute.String("order.id", output.OrderID))

	return output, nil
}

func (srv *checkoutService) createOrder(ctx context.Context, actor usecase.Actor, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	cart, err := srv.cartRepo.FindByID(ctx, input.CartID)
	if err != nil {
		return nil, mapCartError(err, "failed to find cart for checkout")
	}
	if !cart.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cart belongs to another user")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("nothing to check out")
	}

	total := cart.Items.Total()
	if input.Total != nil && !input.Total.Equal(total) {
		return nil, domainerrors.ErrTotalMismatch.WrapMessage(fmt.Sprintf("cart total is %s", total.StringFixed(2)))
	}

	intent, err := srv.resumableIntent(ctx, cart, total)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		if intent, err = srv.startIntent(ctx, cart, total); err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Checkout in progress",
		slog.Any("intentID", intent.ID),
		slog.Any("cartID", cart.ID),
		slog.String("state", string(intent.State)),
	)

	if intent.State == entity.CheckoutStarted {
		if err := srv.requestProviderOrder(ctx, intent); err != nil {
			return nil, err
		}
	}

	var invoice *entity.Invoice
	if intent.State == entity.CheckoutOrderCreated {
		if invoice, err = srv.openInvoice(ctx, intent); err != nil {
			return nil, errors.Wrap(err, "provider order created but invoice not stored")
		}
		srv.publish(ctx, constants.EventOrderCreated, invoice)
	} else {
		if invoice, err = srv.invoiceRepo.FindByOrderID(ctx, intent.ProviderOrderID); err != nil {
			return nil, errors.Wrap(err, "failed to load pending invoice")
		}
	}

	return &usecase.CreateOrderOutput{
		OrderID:   intent.ProviderOrderID,
		InvoiceID: invoice.ID,
		IntentID:  intent.ID,
	}, nil
}

// resumableIntent returns the open intent of the cart when it still matches the cart content.
// A stale one is abandoned so the caller starts over. A cart whose payment is being captured
// or already was is rejected.
func (srv *checkoutService) resumableIntent(ctx context.Context, cart *entity.Cart, total decimal.Decimal) (*entity.CheckoutIntent, error) {
	intent, err := srv.intentRepo.FindActiveByCart(ctx, cart.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCheckoutIntentNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find open checkout")
	}

	if intent.State.IsCapturing() {
		srv.log(ctx).Warn("Checkout rejected, cart payment is being captured",
			slog.Any("intentID", intent.ID),
			slog.String("state", string(intent.State)),
		)

		return nil, domainerrors.ErrConflict.WrapMessage("payment for this cart is already being captured")
	}

	if intent.Total.Equal(total) && intent.Items.Equal(cart.Items) {
		return intent, nil
	}

	srv.log(ctx).Info("Cart changed since last checkout attempt, abandoning it", slog.Any("intentID", intent.ID))
	if err := srv.saveIntent(ctx, intent, entity.CheckoutAbandoned, errors.New("cart changed")); err != nil {
		return nil, err
	}

	return nil, nil
}

func (srv *checkoutService) startIntent(ctx context.Context, cart *entity.Cart, total decimal.Decimal) (*entity.CheckoutIntent, error) {
	user, err := srv.userRepo.FindByID(ctx, cart.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cart owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load cart owner")
	}

	intent := &entity.CheckoutIntent{
		ID:       uuid.New(),
		CartID:   cart.ID,
		UserID:   cart.UserID,
		Customer: user.Snapshot(),
		Items:    cart.Items,
		Total:    total,
		State:    entity.CheckoutStarted,
	}
	if err := srv.intentRepo.Create(ctx, intent); err != nil {
		return nil, errors.Wrap(err, "failed to record checkout intent")
	}

	return intent, nil
}

// requestProviderOrder creates the provider order. The intent id is the idempotency key,
// so repeating the call after a lost response returns the same order.
func (srv *checkoutService) requestProviderOrder(ctx context.Context, intent *entity.CheckoutIntent) error {
	items := make([]service.PaymentItem, 0, len(intent.Items))
	for _, li := range intent.Items {
		items = append(items, service.PaymentItem{
			Name:      li.Name,
			UnitPrice: li.Price,
			Quantity:  li.Quantity,
		})
	}

	order, err := srv.gateway.CreateOrder(ctx, &service.PaymentOrderRequest{
		IdempotencyKey: intent.ID.String(),
		ReferenceID:    intent.ReferenceID(),
		Items:          items,
		Total:          intent.Total,
	})
	if err != nil {
		srv.log(ctx).Error("Provider order creation failed", slog.Any("intentID", intent.ID), slog.Any("error", err))
		if saveErr := srv.saveIntent(ctx, intent, entity.CheckoutStarted, err); saveErr != nil {
			srv.log(ctx).Warn("Failed to record provider error on intent", slog.Any("error", saveErr))
		}

		return errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	intent.ProviderOrderID = order.ID
	if err := srv.saveIntent(ctx, intent, entity.CheckoutOrderCreated, nil); err != nil {
		return errors.Wrap(err, "provider order created but not recorded")
	}

	return nil
}

// CapturePayment captures the provider order behind an invoice.
func (srv *checkoutService) CapturePayment(ctx context.Context, actor usecase.Actor, orderID string) (*entity.Invoice, error) {
	ctx, span := srv.tracer.Start(ctx, "checkout.CapturePayment", trace.WithAttributes(
		attribute.String("order.id", orderID),
	))
	defer span.End()

	invoice, err := srv.capturePayment(ctx, actor, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capture failed")

		return nil, err
	}

	return invoice, nil
}

func (srv *checkoutService) capturePayment(ctx context.Context, actor usecase.Actor, orderID string) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, mapInvoiceError(err, "failed to find invoice for order")
	}
	if !actor.CanAccess(invoice.UserID, entity.CapInvoiceManage) {
		return nil, domainerrors.ErrForbidden.WrapMessage("invoice belongs to another user")
	}

	intent, err := srv.intentRepo.FindByProviderOrderID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, repository.ErrCheckoutIntentNotFound) {
			return nil, errors.Wrap(err, "failed to find checkout intent")
		}
		// Invoices entered by hand have no intent.
		intent = nil
	}

	if invoice.IsCompleted() {
		srv.log(ctx).Info("Invoice already paid, capture is a no-op", slog.String("orderID", orderID))
		if err := srv.releaseCart(ctx, invoice, intent); err != nil {
			srv.log(ctx).Warn("Cart release retry failed", slog.String("orderID", orderID), slog.Any("error", err))
		}

		return invoice, nil
	}

	if intent != nil {
		if err := srv.saveIntent(ctx, intent, entity.CheckoutCaptureStarted, nil); err != nil {
			return nil, err
		}
	}

	order, err := srv.gateway.CaptureOrder(ctx, orderID, captureKey(invoice, intent))
	if err != nil {
		srv.log(ctx).Error("Provider capture failed", slog.String("orderID", orderID), slog.Any("error", err))
		srv.markCaptureFailed(ctx, intent, err)

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	if order.Status != service.PaymentStatusCompleted {
		srv.log(ctx).Warn("Payment not completed", slog.String("orderID", orderID), slog.String("status", order.Status))
		srv.markCaptureFailed(ctx, intent, fmt.Errorf("provider reported status %s", order.Status))

		return nil, domainerrors.ErrPaymentIncomplete.WrapMessage("provider status " + order.Status)
	}

	if err := srv.completeInvoice(ctx, invoice, intent); err != nil {
		return nil, errors.Wrap(err, "payment captured but invoice not updated")
	}

	if err := srv.releaseCart(ctx, invoice, intent); err != nil {
		srv.log(ctx).Warn("Payment captured but cart not released", slog.String("orderID", orderID), slog.Any("error", err))
	}

	srv.publishCaptured(ctx, invoice)
	srv.log(ctx).Info("Payment captured", slog.String("orderID", orderID), slog.Any("invoiceID", invoice.ID))

	return invoice, nil
}

func (srv *checkoutService) markCaptureFailed(ctx context.Context, intent *entity.CheckoutIntent, cause error) {
	if intent == nil {
		return
	}
	if err := srv.saveIntent(ctx, intent, entity.CheckoutCaptureFailed, cause); err != nil {
		srv.log(ctx).Warn("Failed to record capture failure", slog.Any("intentID", intent.ID), slog.Any("error", err))
	}
}

// captureKey derives a stable idempotency key for the capture call.
func captureKey(invoice *entity.Invoice, intent *entity.CheckoutIntent) string {
	if intent != nil {
		return "capture-" + intent.ID.String()
	}

	return "capture-" + invoice.ID.String()
}
