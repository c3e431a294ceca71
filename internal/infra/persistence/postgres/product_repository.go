package postgres

import (
	"context"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new catalog product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBarcode
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByBarcode retrieves a product by its barcode.
func (repo *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by barcode")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs returns the products that exist among ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductsDomain(productModels), nil
}

// List pages through the catalog by name and returns the total count.
func (repo *productRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	db := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	query := repo.db.WithContext(ctx).Order("name ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(productModels), total, nil
}

// Update writes every mutable column of the product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("barcode", "name", "price", "brand", "picture", "category", "nutritional_information", "available_quantity").
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateBarcode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product. Carts and invoices keep their snapshots.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindLowStock returns products at or below the threshold, lowest stock first.
func (repo *productRepository) FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("available_quantity <= ?", threshold).
		Order("available_quantity ASC").
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return toProductsDomain(productModels), nil
}

// --- Mapper Functions ---

func toProductsDomain(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                     data.ID,
		Barcode:                derefString(data.Barcode),
		Name:                   data.Name,
		Price:                  data.Price,
		Brand:                  data.Brand,
		Picture:                data.Picture,
		Category:               data.Category,
		NutritionalInformation: map[string]any(data.NutritionalInformation),
		AvailableQuantity:      data.AvailableQuantity,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                     data.ID,
		Barcode:                nullableString(data.Barcode),
		Name:                   data.Name,
		Price:                  data.Price,
		Brand:                  data.Brand,
		Picture:                data.Picture,
		Category:               data.Category,
		NutritionalInformation: datatypes.JSONMap(data.NutritionalInformation),
		AvailableQuantity:      data.AvailableQuantity,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
