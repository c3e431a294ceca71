package postgres

import (
	"context"
	"log/slog"

	"trinity/internal/domain/entity"
	"trinity/internal/domain/lifecycle"
	"trinity/internal/domain/repository"
	"trinity/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// BootstrapParams defines the dependencies of schema bootstrap.
type BootstrapParams struct {
	fx.In
	fx.Lifecycle

	DB       *gorm.DB
	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

// Bootstrap migrates the schema and seeds the role table when the process starts.
func Bootstrap(params BootstrapParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}

			return SeedRoles(ctx, params.RoleRepo, params.Logger)
		},
	})
}

// Migrate creates or updates every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// SeedRoles inserts the role reference data when the table is incomplete. Running it twice is a no-op.
func SeedRoles(ctx context.Context, roleRepo repository.RoleRepository, logger *slog.Logger) error {
	count, err := roleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count >= int64(len(entity.AllRoles)) {
		return nil
	}

	if err := roleRepo.EnsureRoles(ctx, entity.AllRoles); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Seeded roles", slog.Int64("existing", count), slog.Any("roles", entity.AllRoles.ToStrings()))

	return nil
}
