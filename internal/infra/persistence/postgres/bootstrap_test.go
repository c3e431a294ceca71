package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trinity/internal/domain/entity"
	mockRepo "trinity/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoles(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("seeds a fresh table", func(t *testing.T) {
		roleRepo := mockRepo.NewMockRoleRepository(t)
		roleRepo.EXPECT().Count(ctx).Return(int64(0), nil)
		roleRepo.EXPECT().EnsureRoles(ctx, entity.AllRoles).Return(nil)

		require.NoError(t, SeedRoles(ctx, roleRepo, logger))
	})

	t.Run("complete table is left alone", func(t *testing.T) {
		roleRepo := mockRepo.NewMockRoleRepository(t)
		roleRepo.EXPECT().Count(ctx).Return(int64(len(entity.AllRoles)), nil)

		require.NoError(t, SeedRoles(ctx, roleRepo, logger))
	})

	t.Run("count failure", func(t *testing.T) {
		roleRepo := mockRepo.NewMockRoleRepository(t)
		roleRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("relation does not exist"))

		err := SeedRoles(ctx, roleRepo, logger)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "relation does not exist")
	})
}
