package impl

import (
	"context"
	"testing"
	"time"

	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	mockRepo "trinity/internal/mocks/repository"
	mockSvc "trinity/internal/mocks/service"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "0600000000",
		Password:    "secret",
		City:        "Lille",
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
	assert.Equal(t, "Lille", user.BillingAddress.City)
}

func TestAuthService_Register_RequestedRoles(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	registrar := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	input := &usecase.RegisterUserInput{
		PhoneNumber: "0600000001",
		Password:    "secret",
		Roles:       []string{"admin", "moderator", "admin"},
		Registrar:   &registrar,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleModerator}, user.Roles)
}

func TestAuthService_Register_PrivilegedRolesNeedUserManager(t *testing.T) {
	moderator := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleModerator}}

	tests := []struct {
		name      string
		roles     []string
		registrar *usecase.Actor
	}{
		{name: "self-registration as admin", roles: []string{"admin"}},
		{name: "self-registration as moderator", roles: []string{"user", "moderator"}},
		{name: "moderator creating an admin", roles: []string{"admin"}, registrar: &moderator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
				PhoneNumber: "0600000000",
				Password:    "password123",
				Roles:       tt.roles,
				Registrar:   tt.registrar,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		})
	}
}

func TestAuthService_Register_SelfRegistrationAsUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		PhoneNumber: "0600000003",
		Password:    "secret",
		Roles:       []string{"user"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		PhoneNumber: "0600000002",
		Password:    "secret",
		Roles:       []string{"superuser"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownRole))
}

func TestAuthService_Register_MissingPhone(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{Password: "secret"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicatePhoneNumber)

	_, err := fx.service.Register(ctx, &usecase.RegisterUserInput{PhoneNumber: "0600000003", Password: "secret"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{PhoneNumber: "0600000004", Password: "secret"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		PhoneNumber:  "0600000005",
		PasswordHash: "hashed",
		Roles:        entity.Roles{entity.RoleUser},
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByPhoneNumber(ctx, "0600000005").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"user"}).Return("token", expiresAt, nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{PhoneNumber: "0600000005", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, user, output.User)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PhoneNumber: "0600000006", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByPhoneNumber(ctx, "0600000006").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{PhoneNumber: "0600000006", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_UnknownPhone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByPhoneNumber(ctx, "0699999999").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{PhoneNumber: "0699999999", Password: "secret"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(fx authServiceFixtures, ctx context.Context)
		wantErr    error
	}{
		{
			name: "valid token",
			setupMocks: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			},
		},
		{
			name: "expired token",
			setupMocks: func(fx authServiceFixtures, _ context.Context) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "deleted user",
			setupMocks: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: userID}, nil)
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			tt.setupMocks(fx, ctx)

			user, err := fx.service.Authenticate(ctx, "tok")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}
