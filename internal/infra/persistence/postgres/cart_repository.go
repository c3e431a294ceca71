package postgres

import (
	"context"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// CreateForUser inserts an empty cart unless the user already has one.
func (repo *cartRepository) CreateForUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, bool, error) {
	cartM := &model.CartModel{
		UserID: userID,
		Items:  fromLineItemsDomain(nil),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(cartM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, false, repository.ErrUserNotFound
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}
	if result.RowsAffected == 1 {
		return toCartDomain(cartM), true, nil
	}

	var existing model.CartModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load existing cart")
	}

	return toCartDomain(&existing), false, nil
}

// FindByID retrieves a cart by its ID.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate loads the cart with SELECT ... FOR UPDATE.
func (repo *cartRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *cartRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := db.Where("id = ?", id).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by ID")
	}

	return toCartDomain(&cartM), nil
}

// FindByUser returns the carts of the user.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	var cartModels []*model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cartModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find carts by user")
	}

	carts := make([]*entity.Cart, 0, len(cartModels))
	for _, cartM := range cartModels {
		carts = append(carts, toCartDomain(cartM))
	}

	return carts, nil
}

// SaveItems writes the item list and increments the version.
func (repo *cartRepository) SaveItems(ctx context.Context, cart *entity.Cart) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Updates(map[string]any{
			"items":   fromLineItemsDomain(cart.Items),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart items")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	cart.Version++

	return nil
}

// Delete removes the cart.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     toLineItemsDomain(data.Items),
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
