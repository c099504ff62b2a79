// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"macts/internal/delivery/http/middleware"
	"macts/internal/delivery/http/response"
	"macts/internal/domain/entity"
	"macts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck responds to liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the authenticated account ID set by the auth middleware.
// The returned error renders through the HTTP error handler.
func getUserID(c echo.Context) (string, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}

	return userID, nil
}

// venueParam parses the :venue path parameter.
func venueParam(c echo.Context) (entity.Venue, error) {
	venue, err := entity.ParseVenue(c.Param("venue"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unknown venue: "+c.Param("venue"))
	}

	return venue, nil
}

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	SessionUC usecase.TapSessionUsecase
	Logger    *slog.Logger
}

// DashboardHandler serves the live venue dashboard sessions.
type DashboardHandler struct {
	sessionUC usecase.TapSessionUsecase
	logger    *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSession opens a dashboard session at a venue for the authenticated user.
func (h *DashboardHandler) StartSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	venue, err := venueParam(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.StartSession(c.Request().Context(), userID, venue); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"venue": venue.String(),
	}, "Dashboard session opened")
}

// StopSession closes the authenticated user's session at a venue.
func (h *DashboardHandler) StopSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	venue, err := venueParam(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.StopSession(userID, venue); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Dashboard session closed")
}

// GetState returns the live display state of an open session.
func (h *DashboardHandler) GetState(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	venue, err := venueParam(c)
	if err != nil {
		return err
	}

	state, err := h.sessionUC.SessionState(userID, venue)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Dashboard state retrieved")
}
