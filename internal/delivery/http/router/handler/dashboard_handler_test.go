package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"macts/internal/delivery/http/middleware"
	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	mockUC "macts/internal/mocks/usecase"
	"macts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardContext(t *testing.T, method, venue, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, "/dashboard/"+venue, nil)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.SetParamNames("venue")
	c.SetParamValues(venue)
	if userID != "" {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func newDashboardHandler(t *testing.T) (*DashboardHandler, *mockUC.MockTapSessionUsecase) {
	t.Helper()

	sessions := mockUC.NewMockTapSessionUsecase(t)
	handler := NewDashboardHandler(DashboardHandlerParams{
		SessionUC: sessions,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, sessions
}

func TestStartSession(t *testing.T) {
	handler, sessions := newDashboardHandler(t)
	sessions.EXPECT().StartSession(mock.Anything, "user-001", entity.VenueLibrary).Return(nil).Once()

	c, rec := newDashboardContext(t, http.MethodPost, "library", "user-001")

	require.NoError(t, handler.StartSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStartSession_NonLiveVenue(t *testing.T) {
	handler, sessions := newDashboardHandler(t)
	sessions.EXPECT().StartSession(mock.Anything, "user-001", entity.VenueRegistrar).
		Return(domainerrors.ErrVenueNotLive).Once()

	c, rec := newDashboardContext(t, http.MethodPost, "registrar", "user-001")

	require.NoError(t, handler.StartSession(c))
	assert.Equal(t, domainerrors.ErrVenueNotLive.HTTPCode(), rec.Code)
}

func TestStartSession_UnknownVenue(t *testing.T) {
	handler, _ := newDashboardHandler(t)

	c, _ := newDashboardContext(t, http.MethodPost, "cafeteria", "user-001")

	err := handler.StartSession(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestStartSession_MissingUser(t *testing.T) {
	handler, _ := newDashboardHandler(t)

	c, _ := newDashboardContext(t, http.MethodPost, "library", "")

	err := handler.StartSession(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestGetState(t *testing.T) {
	handler, sessions := newDashboardHandler(t)
	state := &usecase.TapDashboardState{AlertVisible: true}
	sessions.EXPECT().SessionState("user-001", entity.VenueGym).Return(state, nil).Once()

	c, rec := newDashboardContext(t, http.MethodGet, "gym", "user-001")

	require.NoError(t, handler.GetState(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AlertVisible bool `json:"alertVisible"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.AlertVisible)
}

func TestStopSession_NotFound(t *testing.T) {
	handler, sessions := newDashboardHandler(t)
	sessions.EXPECT().StopSession("user-001", entity.VenueGym).
		Return(domainerrors.ErrSessionNotFound).Once()

	c, rec := newDashboardContext(t, http.MethodDelete, "gym", "user-001")

	require.NoError(t, handler.StopSession(c))
	assert.Equal(t, domainerrors.ErrSessionNotFound.HTTPCode(), rec.Code)
}
