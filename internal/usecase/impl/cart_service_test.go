package impl

import (
	"context"
	"testing"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	mockRepo "trinity/internal/mocks/repository"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	txCarts     *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	txCarts := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	factory.EXPECT().CartRepo().Return(txCarts).Maybe()

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			TxManager:   txManager,
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			Logger:      newDiscardLogger(),
		}),
		txManager:   txManager,
		factory:     factory,
		cartRepo:    cartRepo,
		txCarts:     txCarts,
		productRepo: productRepo,
	}
}

func userActor(id uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: id, Roles: entity.Roles{entity.RoleUser}}
}

func TestCartService_CreateCart_ReturnsExisting(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Cart{ID: uuid.New(), UserID: userID}
	fx.cartRepo.EXPECT().CreateForUser(ctx, userID).Return(existing, false, nil)

	cart, created, err := fx.service.CreateCart(ctx, userActor(userID))

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, cart.ID)
}

func TestCartService_AddThenRemove_RestoresItems(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	bread := &entity.Product{ID: uuid.New(), Name: "Bread", Price: decimal.RequireFromString("2.10")}
	milk := &entity.Product{ID: uuid.New(), Name: "Milk", Price: decimal.RequireFromString("0.95")}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Items: entity.LineItems{entity.NewLineItem(bread, 1)}}
	before := append(entity.LineItems(nil), cart.Items...)

	expectTx(fx.txManager, fx.factory)
	fx.txCarts.EXPECT().FindByIDForUpdate(ctx, cart.ID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, milk.ID).Return(milk, nil)
	fx.txCarts.EXPECT().SaveItems(ctx, cart).Return(nil)

	added, err := fx.service.AddProduct(ctx, userActor(userID), cart.ID, milk.ID, 0)
	require.NoError(t, err)
	require.Len(t, added.Items, 2)
	assert.Equal(t, 1, added.Items[1].Quantity)
	assert.True(t, added.Items.Total().Equal(decimal.RequireFromString("3.05")))

	removed, err := fx.service.RemoveProduct(ctx, userActor(userID), cart.ID, milk.ID)
	require.NoError(t, err)
	assert.Equal(t, before, removed.Items)
}

func TestCartService_RemoveProduct_AbsentSkipsWrite(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	expectTx(fx.txManager, fx.factory)
	fx.txCarts.EXPECT().FindByIDForUpdate(ctx, cart.ID).Return(cart, nil)

	updated, err := fx.service.RemoveProduct(ctx, userActor(userID), cart.ID, uuid.New())

	require.NoError(t, err)
	assert.True(t, updated.IsEmpty())
}

func TestCartService_AddProduct_Errors(t *testing.T) {
	owner := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name       string
		actor      usecase.Actor
		quantity   int
		setupMocks func(fx cartServiceFixtures, ctx context.Context)
		wantErr    error
	}{
		{
			name:     "negative quantity",
			actor:    userActor(owner),
			quantity: -2,
			wantErr:  domainerrors.ErrValidationFailed,
		},
		{
			name:     "cart of another user",
			actor:    userActor(uuid.New()),
			quantity: 1,
			setupMocks: func(fx cartServiceFixtures, ctx context.Context) {
				expectTx(fx.txManager, fx.factory)
				fx.txCarts.EXPECT().FindByIDForUpdate(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: owner}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:     "missing cart",
			actor:    userActor(owner),
			quantity: 1,
			setupMocks: func(fx cartServiceFixtures, ctx context.Context) {
				expectTx(fx.txManager, fx.factory)
				fx.txCarts.EXPECT().FindByIDForUpdate(ctx, cartID).Return(nil, repository.ErrCartNotFound)
			},
			wantErr: domainerrors.ErrCartNotFound,
		},
		{
			name:     "missing product",
			actor:    userActor(owner),
			quantity: 1,
			setupMocks: func(fx cartServiceFixtures, ctx context.Context) {
				expectTx(fx.txManager, fx.factory)
				fx.txCarts.EXPECT().FindByIDForUpdate(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: owner}, nil)
				fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			ctx := context.Background()
			if tt.setupMocks != nil {
				tt.setupMocks(fx, ctx)
			}

			_, err := fx.service.AddProduct(ctx, tt.actor, cartID, productID, tt.quantity)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCartService_GetCart_Access(t *testing.T) {
	owner := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: owner}

	t.Run("stranger is forbidden", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)

		_, err := fx.service.GetCart(ctx, userActor(uuid.New()), cart.ID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin reads any cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)

		got, err := fx.service.GetCart(ctx, usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}, cart.ID)

		require.NoError(t, err)
		assert.Equal(t, cart, got)
	})
}

func TestCartService_DeleteCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: owner}
	fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
	fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil)

	require.NoError(t, fx.service.DeleteCart(ctx, userActor(owner), cart.ID))
}

func TestCartService_DeleteCart_OtherUsersCart(t *testing.T) {
	const auditor entity.Role = "auditor"
	entity.RoleCapabilities[auditor] = []entity.Capability{entity.CapCartReadAny}
	t.Cleanup(func() { delete(entity.RoleCapabilities, auditor) })

	tests := []struct {
		name    string
		roles   entity.Roles
		allowed bool
	}{
		{name: "reading any cart is not enough", roles: entity.Roles{auditor}},
		{name: "customer", roles: entity.Roles{entity.RoleUser}},
		{name: "moderator", roles: entity.Roles{entity.RoleModerator}},
		{name: "admin manages any cart", roles: entity.Roles{entity.RoleAdmin}, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			ctx := context.Background()
			cart := &entity.Cart{ID: uuid.New(), UserID: uuid.New()}
			fx.cartRepo.EXPECT().FindByID(ctx, cart.ID).Return(cart, nil)
			if tt.allowed {
				fx.cartRepo.EXPECT().Delete(ctx, cart.ID).Return(nil)
			}

			err := fx.service.DeleteCart(ctx, usecase.Actor{UserID: uuid.New(), Roles: tt.roles}, cart.ID)

			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		})
	}
}
