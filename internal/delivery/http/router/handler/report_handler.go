package handler

import (
	"log/slog"
	"net/http"

	"macts/internal/delivery/http/response"
	"macts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// ReportHandler serves the per-venue tap history report screens.
type ReportHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// VenueHistory returns the authenticated user's confirmed taps for a venue,
// most recent first.
func (h *ReportHandler) VenueHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	venue, err := venueParam(c)
	if err != nil {
		return err
	}

	records, err := h.historyUC.VenueHistory(c.Request().Context(), userID, venue)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Tap history retrieved")
}
