// Package stream runs the venue reader feed subscriptions as a delivery.
package stream

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"macts/config"
	"macts/internal/delivery"
	"macts/internal/domain/entity"
	"macts/internal/domain/service"
	"macts/internal/usecase"

	"go.uber.org/fx"
)

// reconnectDelay is the pause between feed reconnection attempts.
const reconnectDelay = 5 * time.Second

// ServerParams holds dependencies for the stream server
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Source   service.TapStreamSource
	Sessions usecase.TapSessionUsecase
}

// streamServer keeps one subscription per enabled venue alive and fans
// every read into the open dashboard sessions.
type streamServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	source   service.TapStreamSource
	sessions usecase.TapSessionUsecase

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer creates the reader feed delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &streamServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		source:   params.Source,
		sessions: params.Sessions,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts one subscription loop per enabled venue and blocks until
// every loop has exited.
func (s *streamServer) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	for name, venueCfg := range s.cfg.Venues {
		if venueCfg == nil || !venueCfg.Enabled {
			continue
		}

		venue, err := entity.ParseVenue(name)
		if err != nil {
			s.logger.Warn("Skipping unknown venue in feed config", slog.String("venue", name))

			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.subscribeLoop(ctx, venue)
		}()
	}

	s.wg.Wait()

	return nil
}

// subscribeLoop holds one venue's feed subscription, reconnecting with a
// fixed delay until ctx is cancelled.
func (s *streamServer) subscribeLoop(ctx context.Context, venue entity.Venue) {
	for {
		s.logger.Info("Subscribing to venue feed", slog.String("venue", venue.String()))

		err := s.source.Subscribe(ctx, venue, s.sessions.Dispatch)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logger.Warn("Venue feed subscription ended",
				slog.String("venue", venue.String()),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *streamServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down venue feed subscriptions")

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	return nil
}
