// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/domain/service"
	"trinity/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Without requested roles the user gets the user role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("phone number and password are required")
	}

	roles := entity.Roles{entity.RoleUser}
	if len(input.Roles) > 0 {
		parsed, unknown, ok := entity.ParseRoles(input.Roles)
		if !ok {
			return nil, domainerrors.ErrUnknownRole.WrapMessage(fmt.Sprintf("role %q does not exist", unknown))
		}
		roles = parsed
	}
	if grantsPrivilege(roles) && (input.Registrar == nil || !input.Registrar.Can(entity.CapUserManage)) {
		srv.log(ctx).Warn("Registration rejected, privileged roles requested", slog.Any("roles", roles))

		return nil, domainerrors.ErrForbidden.WrapMessage("only user managers may assign roles beyond user")
	}

	srv.log(ctx).Info("Starting registration", slog.String("phoneNumber", phone), slog.Any("roles", roles))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PhoneNumber:  phone,
		PasswordHash: hashedPassword,
		BillingAddress: entity.BillingAddress{
			Address: input.Address,
			ZipCode: input.ZipCode,
			City:    input.City,
			Country: input.Country,
		},
		Roles: roles,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhoneNumber) {
			srv.log(ctx).Warn("Registration rejected, phone number taken", slog.String("phoneNumber", phone))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("failed to register user")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

func grantsPrivilege(roles entity.Roles) bool {
	for _, r := range roles {
		if r != entity.RoleUser {
			return true
		}
	}

	return false
}

// SignIn checks the password of the account behind the phone number and issues an access token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("phoneNumber", input.PhoneNumber))

	user, err := srv.userRepo.FindByPhoneNumber(ctx, strings.TrimSpace(input.PhoneNumber))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed, unknown phone number", slog.String("phoneNumber", input.PhoneNumber))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.Any("userID", user.ID), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign-in failed")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate validates the token and reloads its user so role changes apply immediately.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}
