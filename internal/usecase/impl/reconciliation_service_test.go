package impl

import (
	"context"
	"testing"
	"time"

	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	mockRepo "trinity/internal/mocks/repository"
	mockSvc "trinity/internal/mocks/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconciliationFixtures struct {
	service     usecase.ReconciliationUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	invoiceRepo *mockRepo.MockInvoiceRepository
	intentRepo  *mockRepo.MockCheckoutIntentRepository
	txInvoices  *mockRepo.MockInvoiceRepository
	txIntents   *mockRepo.MockCheckoutIntentRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
}

func createTestReconciliationService(t *testing.T) reconciliationFixtures {
	fx := reconciliationFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		invoiceRepo: mockRepo.NewMockInvoiceRepository(t),
		intentRepo:  mockRepo.NewMockCheckoutIntentRepository(t),
		txInvoices:  mockRepo.NewMockInvoiceRepository(t),
		txIntents:   mockRepo.NewMockCheckoutIntentRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().InvoiceRepo().Return(fx.txInvoices).Maybe()
	fx.factory.EXPECT().CheckoutIntentRepo().Return(fx.txIntents).Maybe()

	fx.service = NewReconciliationService(ReconciliationServiceParams{
		Config:      newTestConfig(10),
		TxManager:   fx.txManager,
		CartRepo:    fx.cartRepo,
		InvoiceRepo: fx.invoiceRepo,
		IntentRepo:  fx.intentRepo,
		Gateway:     fx.gateway,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func (fx reconciliationFixtures) expectStale(intents ...*entity.CheckoutIntent) {
	fx.intentRepo.EXPECT().
		FindStale(mock.Anything, entity.ReconcilableStates, mock.AnythingOfType("time.Time"), 50).
		Return(intents, nil)
}

func TestReconciliationService_Reconcile_NothingStale(t *testing.T) {
	fx := createTestReconciliationService(t)
	fx.expectStale()

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &usecase.ReconcileResult{}, result)
}

func TestReconciliationService_Reconcile_CutoffUsesStaleAfter(t *testing.T) {
	fx := createTestReconciliationService(t)

	before := time.Now()
	fx.intentRepo.EXPECT().
		FindStale(mock.Anything, entity.ReconcilableStates, mock.AnythingOfType("time.Time"), 50).
		Run(func(_ context.Context, _ []entity.CheckoutState, updatedBefore time.Time, _ int) {
			assert.WithinDuration(t, before.Add(-10*time.Minute), updatedBefore, time.Second)
		}).
		Return(nil, nil)

	_, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
}

func TestReconciliationService_Reconcile_StartedIsAbandoned(t *testing.T) {
	fx := createTestReconciliationService(t)

	intent := &entity.CheckoutIntent{ID: uuid.New(), State: entity.CheckoutStarted}
	var states []entity.CheckoutState
	fx.expectStale(intent)
	recordStates(fx.intentRepo, &states)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutAbandoned}, states)
}

func TestReconciliationService_Reconcile_OrderCreatedOpensInvoice(t *testing.T) {
	fx := createTestReconciliationService(t)

	intent := &entity.CheckoutIntent{ID: uuid.New(), CartID: uuid.New(), ProviderOrderID: "ORDER-7", State: entity.CheckoutOrderCreated}
	var txStates []entity.CheckoutState
	fx.expectStale(intent)
	expectTx(fx.txManager, fx.factory)
	fx.txInvoices.EXPECT().FindByOrderID(mock.Anything, "ORDER-7").Return(nil, repository.ErrInvoiceNotFound)
	fx.txInvoices.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Invoice")).Return(nil)
	recordStates(fx.txIntents, &txStates)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutPendingPayment}, txStates)
}

func TestReconciliationService_Reconcile_CaptureStartedCompletedAtProvider(t *testing.T) {
	fx := createTestReconciliationService(t)

	owner := uuid.New()
	invoice, intent := pendingCheckout(owner)
	intent.State = entity.CheckoutCaptureStarted
	var outerStates, txStates []entity.CheckoutState

	fx.expectStale(intent)
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.gateway.EXPECT().GetOrder(mock.Anything, "ORDER-1").
		Return(&service.PaymentOrder{ID: "ORDER-1", Status: service.PaymentStatusCompleted}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txInvoices.EXPECT().Update(mock.Anything, invoice).Return(nil)
	recordStates(fx.txIntents, &txStates)
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, eventOfType(constants.EventPaymentCaptured)).Return(nil)
	fx.cartRepo.EXPECT().Delete(mock.Anything, intent.CartID).Return(nil)
	recordStates(fx.intentRepo, &outerStates)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.True(t, invoice.IsCompleted())
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCaptured}, txStates)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCompleted}, outerStates)
}

func TestReconciliationService_Reconcile_CaptureStartedNotPaid(t *testing.T) {
	fx := createTestReconciliationService(t)

	invoice, intent := pendingCheckout(uuid.New())
	intent.State = entity.CheckoutCaptureStarted
	var states []entity.CheckoutState

	fx.expectStale(intent)
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.gateway.EXPECT().GetOrder(mock.Anything, "ORDER-1").
		Return(&service.PaymentOrder{ID: "ORDER-1", Status: service.PaymentStatusApproved}, nil)
	recordStates(fx.intentRepo, &states)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.False(t, invoice.IsCompleted())
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCaptureFailed}, states)
}

func TestReconciliationService_Reconcile_CapturedReleasesCart(t *testing.T) {
	fx := createTestReconciliationService(t)

	invoice, intent := pendingCheckout(uuid.New())
	invoice.PaymentStatus = entity.PaymentCompleted
	intent.State = entity.CheckoutCaptured
	var states []entity.CheckoutState

	fx.expectStale(intent)
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.cartRepo.EXPECT().Delete(mock.Anything, intent.CartID).Return(nil)
	recordStates(fx.intentRepo, &states)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCompleted}, states)
}

func TestReconciliationService_Reconcile_FailureDoesNotStopPass(t *testing.T) {
	fx := createTestReconciliationService(t)

	failing := &entity.CheckoutIntent{ID: uuid.New(), ProviderOrderID: "ORDER-X", State: entity.CheckoutCaptureStarted}
	started := &entity.CheckoutIntent{ID: uuid.New(), State: entity.CheckoutStarted}
	var states []entity.CheckoutState

	fx.expectStale(failing, started)
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-X").Return(nil, errors.New("connection refused"))
	recordStates(fx.intentRepo, &states)

	result, err := fx.service.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, 1, result.Failed)
}
