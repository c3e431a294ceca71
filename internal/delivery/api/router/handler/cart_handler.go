package handler

import (
	"log/slog"
	"net/http"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/constants"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest names the product to snapshot into the cart.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// RemoveFromCartRequest names the product whose latest line is dropped.
type RemoveFromCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// CreateCart returns the caller's cart, creating it when needed
func (h *CartHandler) CreateCart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, created, err := h.cartUC.CreateCart(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, cart)
}

// ListCarts returns the caller's carts, or the empty sentinel
func (h *CartHandler) ListCarts(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	carts, err := h.cartUC.ListCarts(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if len(carts) == 0 {
		return response.Success(c, http.StatusOK, constants.EmptyCartsSentinel)
	}

	return response.Success(c, http.StatusOK, carts)
}

// GetCart returns one cart
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), actor, cartID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddProduct appends a product snapshot to the cart
func (h *CartHandler) AddProduct(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.AddProduct(c.Request().Context(), actor, cartID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveProduct drops the latest line of a product from the cart
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	var req RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUC.RemoveProduct(c.Request().Context(), actor, cartID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// DeleteCart removes a cart
func (h *CartHandler) DeleteCart(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	if err := h.cartUC.DeleteCart(c.Request().Context(), actor, cartID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Cart deleted successfully")
}
