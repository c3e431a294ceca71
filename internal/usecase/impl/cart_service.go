package impl

import (
	"context"
	"log/slog"

	deliverycontext "trinity/internal/delivery/context"
	"trinity/internal/domain/entity"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/domain/repository"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) CreateCart(ctx context.Context, actor usecase.Actor) (*entity.Cart, bool, error) {
	cart, created, err := srv.cartRepo.CreateForUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, domainerrors.ErrUserNotFound.WrapMessage("failed to create cart")
		}

		return nil, false, errors.Wrap(err, "failed to create cart")
	}

	if created {
		srv.log(ctx).Info("Cart created", slog.Any("cartID", cart.ID), slog.Any("userID", actor.UserID))
	}

	return cart, created, nil
}

func (srv *cartService) ListCarts(ctx context.Context, actor usecase.Actor) ([]*entity.Cart, error) {
	carts, err := srv.cartRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	return carts, nil
}

func (srv *cartService) GetCart(ctx context.Context, actor usecase.Actor, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, mapCartError(err, "failed to find cart")
	}

	if !actor.CanAccess(cart.UserID, entity.CapCartReadAny) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cart belongs to another user")
	}

	return cart, nil
}

// AddProduct snapshots the product into the cart under a row lock.
func (srv *cartService) AddProduct(ctx context.Context, actor usecase.Actor, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	var updated *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := srv.lockOwnedCart(ctx, cartRepo, actor, cartID)
		if err != nil {
			return err
		}

		product, err := srv.productRepo.FindByID(ctx, productID)
		if err != nil {
			return mapProductError(err, "failed to find product for cart")
		}

		cart.Add(product, quantity)

		if err := cartRepo.SaveItems(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart items")
		}
		updated = cart

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Product added to cart", slog.Any("cartID", cartID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return updated, nil
}

// RemoveProduct is a no-op write when the product is not in the cart.
func (srv *cartService) RemoveProduct(ctx context.Context, actor usecase.Actor, cartID, productID uuid.UUID) (*entity.Cart, error) {
	var updated *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := srv.lockOwnedCart(ctx, cartRepo, actor, cartID)
		if err != nil {
			return err
		}

		if cart.Remove(productID) {
			if err := cartRepo.SaveItems(ctx, cart); err != nil {
				return errors.Wrap(err, "failed to save cart items")
			}
		}
		updated = cart

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *cartService) DeleteCart(ctx context.Context, actor usecase.Actor, cartID uuid.UUID) error {
	cart, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return mapCartError(err, "failed to find cart")
	}

	if !actor.CanAccess(cart.UserID, entity.CapCartManageAny) {
		return domainerrors.ErrForbidden.WrapMessage("cart belongs to another user")
	}

	if err := srv.cartRepo.Delete(ctx, cartID); err != nil {
		return mapCartError(err, "failed to delete cart")
	}

	srv.log(ctx).Info("Cart deleted", slog.Any("cartID", cartID))

	return nil
}

// lockOwnedCart loads the cart for update. Mutations are reserved to the owner.
func (srv *cartService) lockOwnedCart(ctx context.Context, cartRepo repository.CartRepository, actor usecase.Actor, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByIDForUpdate(ctx, cartID)
	if err != nil {
		return nil, mapCartError(err, "failed to lock cart")
	}

	if !cart.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cart belongs to another user")
	}

	return cart, nil
}

func mapCartError(err error, message string) error {
	if errors.Is(err, repository.ErrCartNotFound) {
		return domainerrors.ErrCartNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
