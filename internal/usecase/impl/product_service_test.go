package impl

import (
	"context"
	"testing"

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
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	lookup      *mockSvc.MockNutritionLookup
	cache       *mockSvc.MockLookupCache
	qrCode      *mockSvc.MockQRCodeService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	lookup := mockSvc.NewMockNutritionLookup(t)
	cache := mockSvc.NewMockLookupCache(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo: productRepo,
			Lookup:      lookup,
			Cache:       cache,
			QRCode:      qrCode,
			Logger:      newDiscardLogger(),
		}),
		productRepo: productRepo,
		lookup:      lookup,
		cache:       cache,
		qrCode:      qrCode,
	}
}

func nutellaLookup() *service.NutritionProduct {
	return &service.NutritionProduct{
		Barcode:                "3017620422003",
		Name:                   "Nutella",
		Brand:                  "Ferrero",
		Category:               "spreads",
		NutritionalInformation: map[string]any{"energy_100g": 2252},
	}
}

func TestProductService_AddFromBarcode_CacheMiss(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	found := nutellaLookup()

	fx.cache.EXPECT().Get(ctx, "3017620422003").Return(nil, false, nil)
	fx.lookup.EXPECT().Lookup(ctx, "3017620422003").Return(found, nil)
	fx.cache.EXPECT().Set(ctx, "3017620422003", found).Return(nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.AddFromBarcode(ctx, &usecase.AddFromBarcodeInput{
		Barcode:  "3017620422003",
		Quantity: 12,
		Price:    decimal.RequireFromString("4.99"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Nutella", product.Name)
	assert.Equal(t, "spreads", product.Category)
	assert.Equal(t, 12, product.AvailableQuantity)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("4.99")))
}

func TestProductService_AddFromBarcode_CacheHitSkipsLookup(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.cache.EXPECT().Get(ctx, "3017620422003").Return(nutellaLookup(), true, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.AddFromBarcode(ctx, &usecase.AddFromBarcodeInput{Barcode: "3017620422003", Quantity: 1})

	require.NoError(t, err)
	assert.Equal(t, "Ferrero", product.Brand)
}

func TestProductService_AddFromBarcode_CacheErrorFallsBack(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	found := nutellaLookup()

	fx.cache.EXPECT().Get(ctx, "3017620422003").Return(nil, false, errors.New("connection refused"))
	fx.lookup.EXPECT().Lookup(ctx, "3017620422003").Return(found, nil)
	fx.cache.EXPECT().Set(ctx, "3017620422003", found).Return(errors.New("connection refused"))
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	_, err := fx.service.AddFromBarcode(ctx, &usecase.AddFromBarcodeInput{Barcode: "3017620422003", Quantity: 1})

	require.NoError(t, err)
}

func TestProductService_AddFromBarcode_Errors(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(fx productServiceFixtures, ctx context.Context)
		wantErr    error
	}{
		{
			name: "unknown barcode",
			setupMocks: func(fx productServiceFixtures, ctx context.Context) {
				fx.cache.EXPECT().Get(ctx, "000").Return(nil, false, nil)
				fx.lookup.EXPECT().Lookup(ctx, "000").Return(nil, service.ErrBarcodeNotFound)
			},
			wantErr: domainerrors.ErrBarcodeNotFound,
		},
		{
			name: "lookup unavailable",
			setupMocks: func(fx productServiceFixtures, ctx context.Context) {
				fx.cache.EXPECT().Get(ctx, "000").Return(nil, false, nil)
				fx.lookup.EXPECT().Lookup(ctx, "000").Return(nil, errors.New("503 Service Unavailable"))
			},
			wantErr: domainerrors.ErrUpstream,
		},
		{
			name: "barcode already in catalog",
			setupMocks: func(fx productServiceFixtures, ctx context.Context) {
				fx.cache.EXPECT().Get(ctx, "000").Return(nutellaLookup(), true, nil)
				fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrDuplicateBarcode)
			},
			wantErr: domainerrors.ErrProductAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()
			tt.setupMocks(fx, ctx)

			_, err := fx.service.AddFromBarcode(ctx, &usecase.AddFromBarcodeInput{Barcode: "000", Quantity: 1})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestProductService_ListProducts_Paging(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().List(ctx, 200, 400).Return([]*entity.Product{}, int64(410), nil)

	page, err := fx.service.ListProducts(ctx, 3, 1000)

	require.NoError(t, err)
	assert.Equal(t, 200, page.PageSize)
	assert.Equal(t, int64(410), page.Total)
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Product{ID: id, Name: "Milk", Price: decimal.NewFromInt(1), AvailableQuantity: 3}
	newPrice := decimal.RequireFromString("1.25")

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, id, &usecase.UpdateProductInput{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, "Milk", product.Name)
	assert.True(t, product.Price.Equal(newPrice))
	assert.Equal(t, 3, product.AvailableQuantity)
}

func TestProductService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  "Bread",
		Price: decimal.NewFromInt(-1),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_SearchCatalog(t *testing.T) {
	t.Run("defaults paging", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		want := &service.SearchResult{Count: 1, Page: 1, PageSize: 20}

		fx.lookup.EXPECT().
			Search(ctx, service.SearchQuery{Page: 1, PageSize: 20, Terms: "chocolate"}).
			Return(want, nil)

		got, err := fx.service.SearchCatalog(ctx, service.SearchQuery{Terms: "chocolate"})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("upstream failure", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()

		fx.lookup.EXPECT().
			Search(ctx, mock.AnythingOfType("service.SearchQuery")).
			Return(nil, errors.New("timeout"))

		_, err := fx.service.SearchCatalog(ctx, service.SearchQuery{Terms: "chocolate"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUpstream))
	})
}

func TestProductService_ProductLabel(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, id).Return(&entity.Product{ID: id, Barcode: "123"}, nil)
	fx.qrCode.EXPECT().
		GenerateProductLabel(service.ProductLabel{ProductID: id, Barcode: "123"}).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ProductLabel(ctx, id)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
