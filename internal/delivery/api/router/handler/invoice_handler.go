package handler

import (
	"log/slog"
	"net/http"
	"time"

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

const dateLayout = "2006-01-02"

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler serves invoice listing and administration.
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// LineItemRequest is one invoice line. The product id keys the line in reports.
type LineItemRequest struct {
	ProductID uuid.UUID       `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
}

// CreateInvoiceRequest is a manual invoice entry.
type CreateInvoiceRequest struct {
	UserID        uuid.UUID            `json:"userId" validate:"required"`
	OrderID       string               `json:"orderID" validate:"required"`
	Products      []LineItemRequest    `json:"products" validate:"dive"`
	Total         decimal.Decimal      `json:"total" validate:"gte=0"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus" validate:"omitempty,oneof='not completed' completed"`
}

// UpdateInvoiceRequest is a partial invoice edit.
type UpdateInvoiceRequest struct {
	PaymentStatus *entity.PaymentStatus `json:"paymentStatus" validate:"omitempty,oneof='not completed' completed"`
	Products      []LineItemRequest     `json:"products" validate:"omitempty,dive"`
	Total         *decimal.Decimal      `json:"total" validate:"omitempty,gte=0"`
}

func toLineItems(reqs []LineItemRequest) entity.LineItems {
	if reqs == nil {
		return nil
	}

	items := make(entity.LineItems, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, entity.LineItem(r))
	}

	return items
}

// ListInvoices returns the invoices visible to the caller within the optional bounds
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := parseInvoiceFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	invoices, err := h.invoiceUC.ListInvoices(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices)
}

// GetInvoice returns one invoice
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	invoice, err := h.invoiceUC.GetInvoice(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// CreateInvoice records a manual invoice
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid invoice input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.invoiceUC.CreateInvoice(c.Request().Context(), &usecase.CreateInvoiceInput{
		UserID:        req.UserID,
		OrderID:       req.OrderID,
		Items:         toLineItems(req.Products),
		Total:         req.Total,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invoice)
}

// UpdateInvoice edits an invoice; a completed payment cannot move back
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	var req UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid invoice input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.invoiceUC.UpdateInvoice(c.Request().Context(), id, &usecase.UpdateInvoiceInput{
		PaymentStatus: req.PaymentStatus,
		Items:         toLineItems(req.Products),
		Total:         req.Total,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	if err := h.invoiceUC.DeleteInvoice(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Invoice deleted successfully")
}

// parseInvoiceFilter reads the inclusive bounds. Each bound is independent.
// A date-only end bound covers the whole day.
func parseInvoiceFilter(c echo.Context) (*usecase.ListInvoicesInput, error) {
	input := &usecase.ListInvoicesInput{}

	if v := c.QueryParam("startDate"); v != "" {
		t, _, err := parseDate(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid startDate")
		}
		input.StartDate = &t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, dateOnly, err := parseDate(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid endDate")
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		input.EndDate = &t
	}
	if v := c.QueryParam("minAmount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid minAmount")
		}
		input.MinAmount = &d
	}
	if v := c.QueryParam("maxAmount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid maxAmount")
		}
		input.MaxAmount = &d
	}

	return input, nil
}

func parseDate(v string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, true, nil
	}

	t, err := time.Parse(time.RFC3339, v)

	return t, false, errors.WithStack(err)
}
