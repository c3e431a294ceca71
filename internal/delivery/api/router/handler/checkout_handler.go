package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/response"
	"trinity/internal/domain/entity"
	"trinity/internal/errors"
	"trinity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler exposes the PayPal create-order and capture endpoints.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CreateOrderRequest starts the checkout of a cart. Total is optional.
type CreateOrderRequest struct {
	CartID uuid.UUID        `json:"cartId" validate:"required"`
	Total  *decimal.Decimal `json:"total"`
}

// CreateOrderResponse carries the provider order the buyer approves.
type CreateOrderResponse struct {
	OrderID   string    `json:"orderID"`
	InvoiceID uuid.UUID `json:"invoiceId"`
}

// CapturePaymentRequest names the approved provider order.
type CapturePaymentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// CapturePaymentResponse confirms the capture with the completed invoice.
type CapturePaymentResponse struct {
	Message string          `json:"message"`
	Invoice *entity.Invoice `json:"invoice"`
}

// CreateOrder creates the provider order and the pending invoice
func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.checkoutUC.CreateOrder(c.Request().Context(), actor, &usecase.CreateOrderInput{
		CartID: req.CartID,
		Total:  req.Total,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CreateOrderResponse{OrderID: output.OrderID, InvoiceID: output.InvoiceID})
}

// CapturePayment captures an approved order and completes its invoice
func (h *CheckoutHandler) CapturePayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CapturePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid capture input")
	}

	req.OrderID = strings.TrimSpace(req.OrderID)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.checkoutUC.CapturePayment(c.Request().Context(), actor, req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CapturePaymentResponse{Message: "Payment successful", Invoice: invoice})
}
