package postgres

import (
	"context"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// Count returns the number of stored roles.
func (repo *roleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RoleModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count roles")
	}

	return count, nil
}

// EnsureRoles inserts the missing roles and keeps the existing ones.
func (repo *roleRepository) EnsureRoles(ctx context.Context, roles entity.Roles) error {
	if len(roles) == 0 {
		return nil
	}

	roleModels := make([]model.RoleModel, 0, len(roles))
	for _, r := range roles {
		roleModels = append(roleModels, model.RoleModel{Name: r.String()})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roleModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed roles")
	}

	return nil
}
