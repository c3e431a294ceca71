package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProductPageSize = 50
	maxProductPageSize     = 200
	defaultSearchPageSize  = 20
)

type productService struct {
	productRepo repository.ProductRepository
	lookup      service.NutritionLookup
	cache       service.LookupCache
	qrCode      service.QRCodeService
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Lookup      service.NutritionLookup
	Cache       service.LookupCache
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewProductService creates the catalog service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		lookup:      params.Lookup,
		cache:       params.Cache,
		qrCode:      params.QRCode,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, page, pageSize int) (*usecase.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultProductPageSize
	}
	pageSize = min(pageSize, maxProductPageSize)

	products, total, err := srv.productRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if input.Price.IsNegative() || input.AvailableQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price and quantity must not be negative")
	}

	product := &entity.Product{
		Barcode:                strings.TrimSpace(input.Barcode),
		Name:                   strings.TrimSpace(input.Name),
		Price:                  input.Price,
		Brand:                  input.Brand,
		Picture:                input.Picture,
		Category:               input.Category,
		NutritionalInformation: input.NutritionalInformation,
		AvailableQuantity:      input.AvailableQuantity,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// AddFromBarcode resolves the barcode through the cache, then the nutrition database,
// and stores the product with the caller's price and stock.
func (srv *productService) AddFromBarcode(ctx context.Context, input *usecase.AddFromBarcodeInput) (*entity.Product, error) {
	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("barcode is required")
	}
	if input.Price.IsNegative() || input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price and quantity must not be negative")
	}

	found, err := srv.lookupBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Barcode:                barcode,
		Name:                   found.Name,
		Price:                  input.Price,
		Brand:                  found.Brand,
		Picture:                found.Picture,
		Category:               found.Category,
		NutritionalInformation: found.NutritionalInformation,
		AvailableQuantity:      input.Quantity,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to add product from barcode")
	}

	srv.log(ctx).Info("Product added from barcode", slog.String("barcode", barcode), slog.Any("productID", product.ID))

	return product, nil
}

func (srv *productService) lookupBarcode(ctx context.Context, barcode string) (*service.NutritionProduct, error) {
	cached, hit, err := srv.cache.Get(ctx, barcode)
	if err != nil {
		srv.log(ctx).Warn("Lookup cache read failed", slog.String("barcode", barcode), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	found, err := srv.lookup.Lookup(ctx, barcode)
	if err != nil {
		if errors.Is(err, service.ErrBarcodeNotFound) {
			return nil, domainerrors.ErrBarcodeNotFound.WrapMessage("barcode " + barcode)
		}
		srv.log(ctx).Error("Nutrition lookup failed", slog.String("barcode", barcode), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	if err := srv.cache.Set(ctx, barcode, found); err != nil {
		srv.log(ctx).Warn("Lookup cache write failed", slog.String("barcode", barcode), slog.Any("error", err))
	}

	return found, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product name must not be empty")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.AvailableQuantity != nil {
		if *input.AvailableQuantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
		}
		product.AvailableQuantity = *input.AvailableQuantity
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Picture != nil {
		product.Picture = *input.Picture
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.NutritionalInformation != nil {
		product.NutritionalInformation = input.NutritionalInformation
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapProductError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *productService) SearchCatalog(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = defaultSearchPageSize
	}

	result, err := srv.lookup.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Catalog search failed", slog.String("terms", query.Terms), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstream, err.Error())
	}

	return result, nil
}

func (srv *productService) ProductLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	png, err := srv.qrCode.GenerateProductLabel(service.ProductLabel{
		ProductID: product.ID,
		Barcode:   product.Barcode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render product label")
	}

	return png, nil
}

func mapProductError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateBarcode):
		return domainerrors.ErrProductAlreadyExists.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
