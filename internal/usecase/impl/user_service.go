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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe returns the caller's own account.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, srv.userRepo, userID)
}

func (srv *userService) GetUser(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.User, error) {
	if !actor.CanAccess(id, entity.CapUserManage) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user is not visible to caller")
	}

	return srv.findUser(ctx, srv.userRepo, id)
}

func (srv *userService) ListUsers(ctx context.Context, actor usecase.Actor) ([]*entity.User, error) {
	if !actor.Can(entity.CapUserManage) {
		me, err := srv.findUser(ctx, srv.userRepo, actor.UserID)
		if err != nil {
			return nil, err
		}

		return []*entity.User{me}, nil
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateProfile applies the non-empty fields; a new password is hashed first.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var newHash string
	if input.Password != "" {
		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		newHash = hashed
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		applyProfileChanges(user, input)
		if newHash != "" {
			user.PasswordHash = newHash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicatePhoneNumber) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("failed to update profile")
			}

			return errors.Wrap(err, "failed to update profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

func applyProfileChanges(user *entity.User, input *usecase.UpdateProfileInput) {
	if v := strings.TrimSpace(input.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.TrimSpace(input.PhoneNumber); v != "" {
		user.PhoneNumber = v
	}
	if input.BillingAddress != nil {
		user.BillingAddress = *input.BillingAddress
	}
}

// SetRoles replaces the user's roles. At least one known role is required.
func (srv *userService) SetRoles(ctx context.Context, userID uuid.UUID, names []string) (*entity.User, error) {
	if len(names) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one role is required")
	}

	roles, unknown, ok := entity.ParseRoles(names)
	if !ok {
		return nil, domainerrors.ErrUnknownRole.WrapMessage(fmt.Sprintf("role %q does not exist", unknown))
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if err := userRepo.ReplaceRoles(ctx, userID, roles); err != nil {
			return errors.Wrap(err, "failed to replace roles")
		}
		user.Roles = roles
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Roles assigned", slog.Any("userID", userID), slog.Any("roles", roles))

	return updated, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("failed to delete user")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func (srv *userService) findUser(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
