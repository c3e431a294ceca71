package handler

import (
	"log/slog"
	"net/http"

	"trinity/internal/delivery/api/response"
	"trinity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler generates and lists reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GenerateReport computes a sales or performance report attributed to :userId
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	generatedBy, err := parseUUIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	report, err := h.reportUC.GenerateReport(c.Request().Context(), c.Param("types"), generatedBy)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ListReports returns stored reports, newest first
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportUC.ListReports(c.Request().Context(), c.QueryParam("type"), queryInt(c, "limit", 0))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}
