package impl

import (
	"context"
	"testing"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	mockRepo "trinity/internal/mocks/repository"
	mockSvc "trinity/internal/mocks/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	txUsers   *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	factory.EXPECT().UserRepo().Return(txUsers).Maybe()

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		userRepo:  userRepo,
		txUsers:   txUsers,
		hasher:    hasher,
	}
}

func TestUserService_GetUser_Visibility(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	t.Run("own account", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, self).Return(&entity.User{ID: self}, nil)

		user, err := fx.service.GetUser(ctx, usecase.Actor{UserID: self, Roles: entity.Roles{entity.RoleUser}}, self)

		require.NoError(t, err)
		assert.Equal(t, self, user.ID)
	})

	t.Run("another account is hidden from a user", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.GetUser(context.Background(), usecase.Actor{UserID: self, Roles: entity.Roles{entity.RoleUser}}, other)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("admin sees any account", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, other).Return(&entity.User{ID: other}, nil)

		user, err := fx.service.GetUser(ctx, usecase.Actor{UserID: self, Roles: entity.Roles{entity.RoleAdmin}}, other)

		require.NoError(t, err)
		assert.Equal(t, other, user.ID)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	self := uuid.New()

	t.Run("user only sees themselves", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, self).Return(&entity.User{ID: self}, nil)

		users, err := fx.service.ListUsers(ctx, usecase.Actor{UserID: self, Roles: entity.Roles{entity.RoleUser}})

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, self, users[0].ID)
	})

	t.Run("admin lists everyone", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().List(ctx).Return([]*entity.User{{ID: self}, {ID: uuid.New()}}, nil)

		users, err := fx.service.ListUsers(ctx, usecase.Actor{UserID: self, Roles: entity.Roles{entity.RoleAdmin}})

		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, FirstName: "Old", LastName: "Name", PhoneNumber: "0600000000", PasswordHash: "old-hash"}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	expectTx(fx.txManager, fx.factory)
	fx.txUsers.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.txUsers.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "New", user.FirstName)
			assert.Equal(t, "Name", user.LastName)
			assert.Equal(t, "new-hash", user.PasswordHash)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FirstName:      "New",
		Password:       "new-password",
		BillingAddress: &entity.BillingAddress{City: "Lyon"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Lyon", updated.BillingAddress.City)
	assert.Equal(t, "0600000000", updated.PhoneNumber)
}

func TestUserService_UpdateProfile_PhoneTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.txUsers.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.txUsers.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicatePhoneNumber)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{PhoneNumber: "0611111111"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_SetRoles(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	roles := entity.Roles{entity.RoleModerator}

	expectTx(fx.txManager, fx.factory)
	fx.txUsers.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}, nil)
	fx.txUsers.EXPECT().ReplaceRoles(ctx, userID, roles).Return(nil)

	user, err := fx.service.SetRoles(ctx, userID, []string{"moderator"})

	require.NoError(t, err)
	assert.Equal(t, roles, user.Roles)
}

func TestUserService_SetRoles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		roles   []string
		missing bool
		wantErr error
	}{
		{name: "empty list", roles: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown role", roles: []string{"user", "root"}, wantErr: domainerrors.ErrUnknownRole},
		{name: "missing user", roles: []string{"user"}, missing: true, wantErr: domainerrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			userID := uuid.New()

			if tt.missing {
				expectTx(fx.txManager, fx.factory)
				fx.txUsers.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
			}

			_, err := fx.service.SetRoles(ctx, userID, tt.roles)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
