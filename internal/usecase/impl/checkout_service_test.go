package impl

import (
	"context"
	"testing"

	"trinity/internal/domain/constants"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	mockRepo "trinity/internal/mocks/repository"
	mockSvc "trinity/internal/mocks/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	cartRepo    *mockRepo.MockCartRepository
	invoiceRepo *mockRepo.MockInvoiceRepository
	intentRepo  *mockRepo.MockCheckoutIntentRepository
	txInvoices  *mockRepo.MockInvoiceRepository
	txIntents   *mockRepo.MockCheckoutIntentRepository
	gateway     *mockSvc.MockPaymentGateway
	publisher   *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
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

	fx.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:      fx.txManager,
		UserRepo:       fx.userRepo,
		CartRepo:       fx.cartRepo,
		InvoiceRepo:    fx.invoiceRepo,
		IntentRepo:     fx.intentRepo,
		Gateway:        fx.gateway,
		Publisher:      fx.publisher,
		TracerProvider: noop.NewTracerProvider(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

// recordStates captures every state the intent is saved in through repo.
func recordStates(repo *mockRepo.MockCheckoutIntentRepository, states *[]entity.CheckoutState) {
	repo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.CheckoutIntent")).
		Run(func(_ context.Context, intent *entity.CheckoutIntent) {
			*states = append(*states, intent.State)
		}).
		Return(nil).
		Maybe()
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.CheckoutEvent) bool {
		return event.EventType == eventType
	})
}

func fiftyEuroCart(owner uuid.UUID) *entity.Cart {
	product := &entity.Product{ID: uuid.New(), Name: "Olive oil", Price: decimal.RequireFromString("25.00")}

	return &entity.Cart{ID: uuid.New(), UserID: owner, Items: entity.LineItems{entity.NewLineItem(product, 2)}}
}

func TestCheckoutService_CreateOrder_NewIntent(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	cart := fiftyEuroCart(owner)
	var outerStates, txStates []entity.CheckoutState
	var intentID uuid.UUID

	fx.cartRepo.EXPECT().FindByID(mock.Anything, cart.ID).Return(cart, nil)
	fx.intentRepo.EXPECT().FindActiveByCart(mock.Anything, cart.ID).Return(nil, repository.ErrCheckoutIntentNotFound)
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner).Return(&entity.User{ID: owner, FirstName: "Ada"}, nil)
	fx.intentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.CheckoutIntent")).
		Run(func(_ context.Context, intent *entity.CheckoutIntent) {
			intentID = intent.ID
			assert.Equal(t, entity.CheckoutStarted, intent.State)
			assert.Equal(t, "Ada", intent.Customer.FirstName)
		}).
		Return(nil)
	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(req *service.PaymentOrderRequest) bool {
			return req.IdempotencyKey == intentID.String() && req.Total.Equal(decimal.NewFromInt(50))
		})).
		Return(&service.PaymentOrder{ID: "ORDER-1", Status: service.PaymentStatusCreated}, nil)
	recordStates(fx.intentRepo, &outerStates)

	expectTx(fx.txManager, fx.factory)
	fx.txInvoices.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(nil, repository.ErrInvoiceNotFound)
	fx.txInvoices.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Invoice")).
		Run(func(_ context.Context, invoice *entity.Invoice) {
			invoice.ID = uuid.New()
			assert.Equal(t, entity.PaymentNotCompleted, invoice.PaymentStatus)
			assert.Equal(t, cart.ID, *invoice.CartID)
		}).
		Return(nil)
	recordStates(fx.txIntents, &txStates)
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, eventOfType(constants.EventOrderCreated)).Return(nil)

	output, err := fx.service.CreateOrder(context.Background(), userActor(owner), &usecase.CreateOrderInput{CartID: cart.ID})

	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", output.OrderID)
	assert.Equal(t, intentID, output.IntentID)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutOrderCreated}, outerStates)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutPendingPayment}, txStates)
}

func TestCheckoutService_CreateOrder_ReusesOpenIntent(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	cart := fiftyEuroCart(owner)
	intent := &entity.CheckoutIntent{
		ID:              uuid.New(),
		CartID:          cart.ID,
		UserID:          owner,
		Items:           cart.Items,
		Total:           cart.Items.Total(),
		ProviderOrderID: "ORDER-1",
		State:           entity.CheckoutPendingPayment,
	}
	invoice := &entity.Invoice{ID: uuid.New(), OrderID: "ORDER-1", UserID: owner}

	fx.cartRepo.EXPECT().FindByID(mock.Anything, cart.ID).Return(cart, nil)
	fx.intentRepo.EXPECT().FindActiveByCart(mock.Anything, cart.ID).Return(intent, nil)
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)

	output, err := fx.service.CreateOrder(context.Background(), userActor(owner), &usecase.CreateOrderInput{CartID: cart.ID})

	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", output.OrderID)
	assert.Equal(t, invoice.ID, output.InvoiceID)
	assert.Equal(t, intent.ID, output.IntentID)
}

func TestCheckoutService_CreateOrder_StaleIntentAbandoned(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	cart := fiftyEuroCart(owner)
	stale := &entity.CheckoutIntent{
		ID:     uuid.New(),
		CartID: cart.ID,
		Total:  decimal.NewFromInt(10),
		State:  entity.CheckoutStarted,
	}
	var states []entity.CheckoutState

	fx.cartRepo.EXPECT().FindByID(mock.Anything, cart.ID).Return(cart, nil)
	fx.intentRepo.EXPECT().FindActiveByCart(mock.Anything, cart.ID).Return(stale, nil)
	recordStates(fx.intentRepo, &states)
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner).Return(&entity.User{ID: owner}, nil)
	fx.intentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.CheckoutIntent")).Return(nil)
	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("*service.PaymentOrderRequest")).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.CreateOrder(context.Background(), userActor(owner), &usecase.CreateOrderInput{CartID: cart.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstream))
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutAbandoned, entity.CheckoutStarted}, states)
	assert.Equal(t, "cart changed", stale.LastError)
}

func TestCheckoutService_CreateOrder_SameTotalDifferentItems(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	cart := fiftyEuroCart(owner)
	// One 50.00 bottle instead of two 25.00 bottles: same total and line count.
	swapped := entity.NewLineItem(&entity.Product{ID: uuid.New(), Name: "Truffle oil", Price: decimal.RequireFromString("50.00")}, 1)
	previous := &entity.CheckoutIntent{
		ID:              uuid.New(),
		CartID:          cart.ID,
		UserID:          owner,
		Items:           entity.LineItems{swapped},
		Total:           cart.Items.Total(),
		ProviderOrderID: "ORDER-OLD",
		State:           entity.CheckoutPendingPayment,
	}
	var states []entity.CheckoutState
	var created *entity.CheckoutIntent

	fx.cartRepo.EXPECT().FindByID(mock.Anything, cart.ID).Return(cart, nil)
	fx.intentRepo.EXPECT().FindActiveByCart(mock.Anything, cart.ID).Return(previous, nil)
	recordStates(fx.intentRepo, &states)
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner).Return(&entity.User{ID: owner}, nil)
	fx.intentRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.CheckoutIntent")).
		Run(func(_ context.Context, intent *entity.CheckoutIntent) { created = intent }).
		Return(nil)
	fx.gateway.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(req *service.PaymentOrderRequest) bool {
			return len(req.Items) == 1 && req.Items[0].Name == "Olive oil" && req.Items[0].Quantity == 2
		})).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.CreateOrder(context.Background(), userActor(owner), &usecase.CreateOrderInput{CartID: cart.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstream))
	require.NotNil(t, created)
	assert.NotEqual(t, previous.ID, created.ID)
	assert.True(t, created.Items.Equal(cart.Items))
	assert.Equal(t, entity.CheckoutAbandoned, previous.State)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutAbandoned, entity.CheckoutStarted}, states)
	fx.invoiceRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, "ORDER-OLD")
}

func TestCheckoutService_CreateOrder_CaptureInFlight(t *testing.T) {
	for _, state := range []entity.CheckoutState{entity.CheckoutCaptureStarted, entity.CheckoutCaptured} {
		t.Run(string(state), func(t *testing.T) {
			fx := createTestCheckoutService(t)

			owner := uuid.New()
			cart := fiftyEuroCart(owner)
			intent := &entity.CheckoutIntent{
				ID:              uuid.New(),
				CartID:          cart.ID,
				UserID:          owner,
				Items:           cart.Items,
				Total:           cart.Items.Total(),
				ProviderOrderID: "ORDER-1",
				State:           state,
			}

			fx.cartRepo.EXPECT().FindByID(mock.Anything, cart.ID).Return(cart, nil)
			fx.intentRepo.EXPECT().FindActiveByCart(mock.Anything, cart.ID).Return(intent, nil)

			_, err := fx.service.CreateOrder(context.Background(), userActor(owner), &usecase.CreateOrderInput{CartID: cart.ID})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrConflict))
			assert.Equal(t, state, intent.State)
			fx.intentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			fx.intentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			fx.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckoutService_CreateOrder_Rejections(t *testing.T) {
	owner := uuid.New()
	fifty := decimal.NewFromInt(50)
	wrong := decimal.RequireFromString("49.99")

	tests := []struct {
		name    string
		cart    *entity.Cart
		actor   usecase.Actor
		total   *decimal.Decimal
		wantErr error
	}{
		{
			name:    "empty cart",
			cart:    &entity.Cart{ID: uuid.New(), UserID: owner},
			actor:   userActor(owner),
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name:    "client total differs",
			cart:    fiftyEuroCart(owner),
			actor:   userActor(owner),
			total:   &wrong,
			wantErr: domainerrors.ErrTotalMismatch,
		},
		{
			name:    "cart of another user",
			cart:    fiftyEuroCart(owner),
			actor:   userActor(uuid.New()),
			total:   &fifty,
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			fx.cartRepo.EXPECT().FindByID(mock.Anything, tt.cart.ID).Return(tt.cart, nil)

			_, err := fx.service.CreateOrder(context.Background(), tt.actor, &usecase.CreateOrderInput{CartID: tt.cart.ID, Total: tt.total})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func pendingCheckout(owner uuid.UUID) (*entity.Invoice, *entity.CheckoutIntent) {
	cartID := uuid.New()
	invoice := &entity.Invoice{
		ID:            uuid.New(),
		OrderID:       "ORDER-1",
		UserID:        owner,
		TotalAmount:   decimal.NewFromInt(50),
		PaymentStatus: entity.PaymentNotCompleted,
		CartID:        &cartID,
	}
	intent := &entity.CheckoutIntent{
		ID:              uuid.New(),
		CartID:          cartID,
		UserID:          owner,
		ProviderOrderID: "ORDER-1",
		State:           entity.CheckoutPendingPayment,
	}

	return invoice, intent
}

func TestCheckoutService_CapturePayment_Completed(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	invoice, intent := pendingCheckout(owner)
	var outerStates, txStates []entity.CheckoutState

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.intentRepo.EXPECT().FindByProviderOrderID(mock.Anything, "ORDER-1").Return(intent, nil)
	recordStates(fx.intentRepo, &outerStates)
	fx.gateway.EXPECT().
		CaptureOrder(mock.Anything, "ORDER-1", "capture-"+intent.ID.String()).
		Return(&service.PaymentOrder{ID: "ORDER-1", Status: service.PaymentStatusCompleted}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txInvoices.EXPECT().Update(mock.Anything, invoice).Return(nil)
	recordStates(fx.txIntents, &txStates)
	fx.cartRepo.EXPECT().Delete(mock.Anything, intent.CartID).Return(nil)
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, eventOfType(constants.EventPaymentCaptured)).Return(nil)

	paid, err := fx.service.CapturePayment(context.Background(), userActor(owner), "ORDER-1")

	require.NoError(t, err)
	assert.True(t, paid.IsCompleted())
	assert.NotNil(t, paid.CapturedAt)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCaptureStarted, entity.CheckoutCompleted}, outerStates)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCaptured}, txStates)
}

func TestCheckoutService_CapturePayment_NotCompletedKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	invoice, intent := pendingCheckout(owner)
	var states []entity.CheckoutState

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.intentRepo.EXPECT().FindByProviderOrderID(mock.Anything, "ORDER-1").Return(intent, nil)
	recordStates(fx.intentRepo, &states)
	fx.gateway.EXPECT().
		CaptureOrder(mock.Anything, "ORDER-1", mock.AnythingOfType("string")).
		Return(&service.PaymentOrder{ID: "ORDER-1", Status: service.PaymentStatusApproved}, nil)

	_, err := fx.service.CapturePayment(context.Background(), userActor(owner), "ORDER-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentIncomplete))
	assert.False(t, invoice.IsCompleted())
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCaptureStarted, entity.CheckoutCaptureFailed}, states)
	assert.Contains(t, intent.LastError, "APPROVED")
}

func TestCheckoutService_CapturePayment_ProviderError(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	invoice, intent := pendingCheckout(owner)
	var states []entity.CheckoutState

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.intentRepo.EXPECT().FindByProviderOrderID(mock.Anything, "ORDER-1").Return(intent, nil)
	recordStates(fx.intentRepo, &states)
	fx.gateway.EXPECT().
		CaptureOrder(mock.Anything, "ORDER-1", mock.AnythingOfType("string")).
		Return(nil, errors.New("i/o timeout"))

	_, err := fx.service.CapturePayment(context.Background(), userActor(owner), "ORDER-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstream))
	assert.Equal(t, entity.CheckoutCaptureFailed, intent.State)
}

func TestCheckoutService_CapturePayment_AlreadyPaidIsNoop(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	invoice, intent := pendingCheckout(owner)
	invoice.PaymentStatus = entity.PaymentCompleted
	intent.State = entity.CheckoutCaptured
	var states []entity.CheckoutState

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)
	fx.intentRepo.EXPECT().FindByProviderOrderID(mock.Anything, "ORDER-1").Return(intent, nil)
	fx.cartRepo.EXPECT().Delete(mock.Anything, intent.CartID).Return(repository.ErrCartNotFound)
	recordStates(fx.intentRepo, &states)

	paid, err := fx.service.CapturePayment(context.Background(), userActor(owner), "ORDER-1")

	require.NoError(t, err)
	assert.Equal(t, invoice, paid)
	assert.Equal(t, []entity.CheckoutState{entity.CheckoutCompleted}, states)
}

func TestCheckoutService_CapturePayment_ManualInvoice(t *testing.T) {
	fx := createTestCheckoutService(t)

	owner := uuid.New()
	invoice := &entity.Invoice{ID: uuid.New(), OrderID: "MANUAL-1", UserID: owner, PaymentStatus: entity.PaymentNotCompleted}

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "MANUAL-1").Return(invoice, nil)
	fx.intentRepo.EXPECT().FindByProviderOrderID(mock.Anything, "MANUAL-1").Return(nil, repository.ErrCheckoutIntentNotFound)
	fx.gateway.EXPECT().
		CaptureOrder(mock.Anything, "MANUAL-1", "capture-"+invoice.ID.String()).
		Return(&service.PaymentOrder{ID: "MANUAL-1", Status: service.PaymentStatusCompleted}, nil)
	expectTx(fx.txManager, fx.factory)
	fx.txInvoices.EXPECT().Update(mock.Anything, invoice).Return(nil)
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, eventOfType(constants.EventPaymentCaptured)).Return(errors.New("topic not found"))

	paid, err := fx.service.CapturePayment(context.Background(), userActor(owner), "MANUAL-1")

	require.NoError(t, err)
	assert.True(t, paid.IsCompleted())
}

func TestCheckoutService_CapturePayment_Forbidden(t *testing.T) {
	fx := createTestCheckoutService(t)

	invoice, _ := pendingCheckout(uuid.New())
	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "ORDER-1").Return(invoice, nil)

	_, err := fx.service.CapturePayment(context.Background(), userActor(uuid.New()), "ORDER-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCheckoutService_CapturePayment_UnknownOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	fx.invoiceRepo.EXPECT().FindByOrderID(mock.Anything, "NOPE").Return(nil, repository.ErrInvoiceNotFound)

	_, err := fx.service.CapturePayment(context.Background(), userActor(uuid.New()), "NOPE")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))
}
