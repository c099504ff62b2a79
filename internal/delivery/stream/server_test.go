package stream

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"macts/config"
	"macts/internal/domain/entity"
	"macts/internal/domain/service"
	mockUC "macts/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// funcSource adapts a function to service.TapStreamSource for tests.
type funcSource func(ctx context.Context, venue entity.Venue, handler service.TapStreamHandler) error

func (f funcSource) Subscribe(ctx context.Context, venue entity.Venue, handler service.TapStreamHandler) error {
	return f(ctx, venue, handler)
}

func newTestConfig(venues map[string]*config.VenueStreamConfig) *config.Config {
	cfg := &config.Config{}
	cfg.Venues = venues

	return cfg
}

func TestServe_SubscribesEnabledVenuesOnly(t *testing.T) {
	sessions := mockUC.NewMockTapSessionUsecase(t)
	sessions.EXPECT().Dispatch(mock.Anything).Maybe()

	subscribed := make(chan entity.Venue, 2)
	source := funcSource(func(ctx context.Context, venue entity.Venue, handler service.TapStreamHandler) error {
		subscribed <- venue
		<-ctx.Done()

		return ctx.Err()
	})

	cfg := newTestConfig(map[string]*config.VenueStreamConfig{
		"library":   {StreamURL: "ws://reader/library", Enabled: true},
		"gym":       {StreamURL: "ws://reader/gym", Enabled: false},
		"cafeteria": {StreamURL: "ws://reader/cafeteria", Enabled: true},
	})

	srv := newTestServer(t, cfg, source, sessions)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(context.Background())
	}()

	select {
	case venue := <-subscribed:
		assert.Equal(t, entity.VenueLibrary, venue)
	case <-time.After(time.Second):
		t.Fatal("expected a library feed subscription")
	}

	// gym is disabled and cafeteria is unknown, so nothing else subscribes.
	select {
	case venue := <-subscribed:
		t.Fatalf("unexpected subscription for %s", venue)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, srv.stop(context.Background()))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestServe_HandsReadsToSessions(t *testing.T) {
	sessions := mockUC.NewMockTapSessionUsecase(t)
	dispatched := make(chan entity.TagRead, 1)
	sessions.EXPECT().Dispatch(mock.Anything).Run(func(read entity.TagRead) {
		dispatched <- read
	}).Once()

	source := funcSource(func(ctx context.Context, venue entity.Venue, handler service.TapStreamHandler) error {
		handler(entity.TagRead{Venue: venue, RawToken: "0410BEEF", ReceivedAt: time.Now()})
		<-ctx.Done()

		return ctx.Err()
	})

	cfg := newTestConfig(map[string]*config.VenueStreamConfig{
		"gym": {StreamURL: "ws://reader/gym", Enabled: true},
	})

	srv := newTestServer(t, cfg, source, sessions)

	go func() { _ = srv.Serve(context.Background()) }()
	t.Cleanup(func() { _ = srv.stop(context.Background()) })

	select {
	case read := <-dispatched:
		assert.Equal(t, entity.VenueGym, read.Venue)
		assert.Equal(t, "0410BEEF", read.RawToken)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatched read")
	}
}

func newTestServer(t *testing.T, cfg *config.Config, source service.TapStreamSource, sessions *mockUC.MockTapSessionUsecase) *streamServer {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:       lc,
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Source:   source,
		Sessions: sessions,
	})
	require.NoError(t, err)

	streamSrv, ok := srv.(*streamServer)
	require.True(t, ok)

	return streamSrv
}
