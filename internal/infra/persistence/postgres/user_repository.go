// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user with its roles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByPhoneNumber retrieves a user by the login key.
func (repo *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("phone_number = ?", phoneNumber).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone number")
	}

	return toUserDomain(&userM), nil
}

// List returns every user, oldest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create inserts the user and links the roles, which must already exist.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	db := repo.db.WithContext(ctx)

	roleModels, err := findRoleModels(db, user.Roles)
	if err != nil {
		return err
	}

	userM := fromUserDomain(user)
	userM.Roles = roleModels

	if err := db.Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhoneNumber
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile columns. Roles are not touched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("first_name", "last_name", "phone_number", "password_hash", "address", "zip_code", "city", "country").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePhoneNumber
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ReplaceRoles overwrites the role links of the user.
func (repo *userRepository) ReplaceRoles(ctx context.Context, userID uuid.UUID, roles entity.Roles) error {
	db := repo.db.WithContext(ctx)

	roleModels, err := findRoleModels(db, roles)
	if err != nil {
		return err
	}

	userM := model.UserModel{ID: userID}
	if err := db.Model(&userM).Association("Roles").Replace(roleModels); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace user roles")
	}

	return nil
}

// Delete removes the user. Role links go with it through the cascade.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func findRoleModels(db *gorm.DB, roles entity.Roles) ([]model.RoleModel, error) {
	if len(roles) == 0 {
		return []model.RoleModel{}, nil
	}

	var roleModels []model.RoleModel
	if err := db.Where("name IN ?", roles.ToStrings()).Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles")
	}
	if len(roleModels) != len(roles) {
		return nil, domainerrors.ErrUnknownRole
	}

	return roleModels, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.Roles))
	for _, r := range data.Roles {
		roles = append(roles, entity.Role(r.Name))
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		BillingAddress: entity.BillingAddress{
			Address: data.Address,
			ZipCode: data.ZipCode,
			City:    data.City,
			Country: data.Country,
		},
		Roles:     roles,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		Address:      data.BillingAddress.Address,
		ZipCode:      data.BillingAddress.ZipCode,
		City:         data.BillingAddress.City,
		Country:      data.BillingAddress.Country,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
