package handler

import (
	"log/slog"
	"net/http"

	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReconcileHandlerParams holds dependencies for the ReconcileHandler
type ReconcileHandlerParams struct {
	fx.In

	Logger      *slog.Logger
	ReconcileUC usecase.ReconciliationUsecase
}

// ReconcileHandler lets a scheduler trigger a reconciliation pass on demand
type ReconcileHandler struct {
	logger      *slog.Logger
	reconcileUC usecase.ReconciliationUsecase
}

// NewReconcileHandler creates a new ReconcileHandler
func NewReconcileHandler(params ReconcileHandlerParams) *ReconcileHandler {
	return &ReconcileHandler{logger: params.Logger, reconcileUC: params.ReconcileUC}
}

// HandleReconcile runs one pass and reports what it did
func (h *ReconcileHandler) HandleReconcile(c echo.Context) error {
	result, err := h.reconcileUC.Reconcile(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Reconciliation failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "reconciliation failed"})
	}

	return c.JSON(http.StatusOK, result)
}
