package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"macts/config"
	"macts/internal/domain/entity"
	mockUC "macts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockTapSessionUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	sessions := mockUC.NewMockTapSessionUsecase(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: sessions,
	})

	return handler, sessions
}

func newPushRequest(t *testing.T, payload any, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/tap-event-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHandlePush_DispatchesTagRead(t *testing.T) {
	handler, sessions := newTestPushHandler(t)

	excessive := true
	sessions.EXPECT().Dispatch(mock.MatchedBy(func(read entity.TagRead) bool {
		return read.Venue == entity.VenueLibrary &&
			read.RawToken == "0410BEEF" &&
			read.ExcessiveTap != nil && *read.ExcessiveTap &&
			read.TapStatus == "IN" &&
			!read.ReceivedAt.IsZero()
	})).Once()

	req := newPushRequest(t, tagReadPayload{
		Venue:        "library",
		TagData:      "0410BEEF",
		ExcessiveTap: &excessive,
		TapStatus:    "IN",
	}, map[string]string{"request_id": "req-123"})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnknownVenueAcksWithoutDispatch(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	req := newPushRequest(t, tagReadPayload{Venue: "cafeteria", TagData: "0410BEEF"}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))

	// Unknown venues are not retryable, so the message is acked.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RejectsMalformedBase64(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "not-base64!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_RejectsMalformedPayload(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractRequestID_Priority(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "attr-id"}

	payload := &tagReadPayload{RequestID: "payload-id"}

	got := handler.extractRequestID(t.Context(), &msg, payload)
	assert.Equal(t, "attr-id", got)

	msg.Message.Attributes = nil
	got = handler.extractRequestID(t.Context(), &msg, payload)
	assert.Equal(t, "payload-id", got)

	payload.RequestID = ""
	got = handler.extractRequestID(t.Context(), &msg, payload)
	assert.NotEmpty(t, got)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(errors.New("plain")))
	assert.True(t, isRetryableError(newRetryableError(errors.New("db down"))))
	assert.True(t, isRetryableError(errors.Wrap(newRetryableError(errors.New("db down")), "outer")))
}
