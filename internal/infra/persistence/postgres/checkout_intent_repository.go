package postgres

import (
	"context"
	"time"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type checkoutIntentRepository struct {
	db *gorm.DB
}

// NewCheckoutIntentRepository is the constructor for checkoutIntentRepository.
func NewCheckoutIntentRepository(db *gorm.DB) repository.CheckoutIntentRepository {
	return &checkoutIntentRepository{db: db}
}

// Create persists a new intent.
func (repo *checkoutIntentRepository) Create(ctx context.Context, intent *entity.CheckoutIntent) error {
	intentM := fromCheckoutIntentDomain(intent)

	if err := repo.db.WithContext(ctx).Create(intentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout intent")
	}

	intent.ID = intentM.ID
	intent.CreatedAt = intentM.CreatedAt
	intent.UpdatedAt = intentM.UpdatedAt

	return nil
}

// Update writes the state columns of the intent.
func (repo *checkoutIntentRepository) Update(ctx context.Context, intent *entity.CheckoutIntent) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutIntentModel{}).
		Where("id = ?", intent.ID).
		Updates(map[string]any{
			"provider_order_id": nullableString(intent.ProviderOrderID),
			"state":             string(intent.State),
			"last_error":        intent.LastError,
			"updated_at":        now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update checkout intent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckoutIntentNotFound
	}

	intent.UpdatedAt = now

	return nil
}

// FindByID retrieves an intent by its ID.
func (repo *checkoutIntentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutIntent, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindByProviderOrderID retrieves the intent that created the provider order.
func (repo *checkoutIntentRepository) FindByProviderOrderID(ctx context.Context, orderID string) (*entity.CheckoutIntent, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("provider_order_id = ?", orderID))
}

// FindActiveByCart returns the newest intent of the cart that has not reached a terminal state.
func (repo *checkoutIntentRepository) FindActiveByCart(ctx context.Context, cartID uuid.UUID) (*entity.CheckoutIntent, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("cart_id = ? AND state IN ?", cartID, statesToStrings(entity.ActiveCheckoutStates)).
		Order("created_at DESC"))
}

func (repo *checkoutIntentRepository) findOne(query *gorm.DB) (*entity.CheckoutIntent, error) {
	var intentM model.CheckoutIntentModel

	if err := query.First(&intentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutIntentNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout intent")
	}

	return toCheckoutIntentDomain(&intentM), nil
}

// FindStale returns intents stuck in the given states, oldest first.
func (repo *checkoutIntentRepository) FindStale(ctx context.Context, states []entity.CheckoutState, updatedBefore time.Time, limit int) ([]*entity.CheckoutIntent, error) {
	if len(states) == 0 {
		return []*entity.CheckoutIntent{}, nil
	}

	query := repo.db.WithContext(ctx).
		Where("state IN ? AND updated_at < ?", statesToStrings(states), updatedBefore).
		Order("updated_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var intentModels []*model.CheckoutIntentModel
	if err := query.Find(&intentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale checkout intents")
	}

	intents := make([]*entity.CheckoutIntent, 0, len(intentModels))
	for _, intentM := range intentModels {
		intents = append(intents, toCheckoutIntentDomain(intentM))
	}

	return intents, nil
}

func statesToStrings(states []entity.CheckoutState) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}

	return out
}

// --- Mapper Functions ---

func toCheckoutIntentDomain(data *model.CheckoutIntentModel) *entity.CheckoutIntent {
	if data == nil {
		return nil
	}

	return &entity.CheckoutIntent{
		ID:              data.ID,
		CartID:          data.CartID,
		UserID:          data.UserID,
		Customer:        toCustomerDomain(data.Customer),
		Items:           toLineItemsDomain(data.Items),
		Total:           data.Total,
		ProviderOrderID: derefString(data.ProviderOrderID),
		State:           entity.CheckoutState(data.State),
		LastError:       data.LastError,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCheckoutIntentDomain(data *entity.CheckoutIntent) *model.CheckoutIntentModel {
	if data == nil {
		return nil
	}

	return &model.CheckoutIntentModel{
		ID:              data.ID,
		CartID:          data.CartID,
		UserID:          data.UserID,
		Customer:        fromCustomerDomain(data.Customer),
		Items:           fromLineItemsDomain(data.Items),
		Total:           data.Total,
		ProviderOrderID: nullableString(data.ProviderOrderID),
		State:           string(data.State),
		LastError:       data.LastError,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
