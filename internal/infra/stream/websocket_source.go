// Package stream connects to the venue RFID reader feeds.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"macts/config"
	"macts/internal/domain/entity"
	"macts/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/net/websocket"
)

const wsOrigin = "http://localhost/"

// websocketSource implements service.TapStreamSource over the readers'
// WebSocket feeds. One Subscribe call holds one connection.
type websocketSource struct {
	endpoints map[entity.Venue]string
	logger    *slog.Logger
}

// NewWebSocketSource builds a stream source from the configured venue
// endpoints. Venues with no enabled endpoint cannot be subscribed.
func NewWebSocketSource(cfg *config.Config, logger *slog.Logger) service.TapStreamSource {
	endpoints := make(map[entity.Venue]string)
	for name, venueCfg := range cfg.Venues {
		if venueCfg == nil || !venueCfg.Enabled || venueCfg.StreamURL == "" {
			continue
		}
		venue, err := entity.ParseVenue(name)
		if err != nil {
			logger.Warn("skipping stream config for unknown venue", slog.String("venue", name))

			continue
		}
		endpoints[venue] = venueCfg.StreamURL
	}

	return &websocketSource{
		endpoints: endpoints,
		logger:    logger,
	}
}

// Subscribe dials the venue's feed and hands every decoded read to the
// handler. It blocks until ctx is cancelled or the connection fails; the
// caller owns reconnection.
func (s *websocketSource) Subscribe(ctx context.Context, venue entity.Venue, handler service.TapStreamHandler) error {
	endpoint, ok := s.endpoints[venue]
	if !ok {
		return errors.Errorf("no stream endpoint configured for venue %s", venue)
	}

	conn, err := websocket.Dial(endpoint, "", wsOrigin)
	if err != nil {
		return errors.Wrapf(err, "dial venue feed %s", endpoint)
	}

	// Reads on the connection have no deadline; closing it is the only
	// way to unblock Receive when ctx ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	s.logger.Info("subscribed to venue feed",
		slog.String("venue", venue.String()),
		slog.String("endpoint", endpoint),
	)

	for {
		var frame []byte
		if err := websocket.Message.Receive(conn, &frame); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return errors.Wrap(err, "receive from venue feed")
		}

		read, err := decodeFrame(venue, frame)
		if err != nil {
			s.logger.Warn("discarding malformed feed frame",
				slog.String("venue", venue.String()),
				slog.Any("error", err),
			)

			continue
		}

		handler(read)
	}
}

// libraryFrame is the JSON payload on the library feed, which classifies
// taps server-side.
type libraryFrame struct {
	TagData      string `json:"tagData"`
	ExcessiveTap *bool  `json:"excessiveTap"`
	TapStatus    string `json:"tapStatus"`
}

// decodeFrame parses one feed frame into a TagRead. The library feed sends
// JSON; every other venue sends the bare token.
func decodeFrame(venue entity.Venue, frame []byte) (entity.TagRead, error) {
	read := entity.TagRead{
		Venue:      venue,
		ReceivedAt: time.Now(),
	}

	if venue.ServerFlagsExcess() {
		var payload libraryFrame
		if err := json.Unmarshal(frame, &payload); err != nil {
			return entity.TagRead{}, errors.Wrap(err, "decode library frame")
		}
		read.RawToken = payload.TagData
		read.ExcessiveTap = payload.ExcessiveTap
		read.TapStatus = payload.TapStatus

		return read, nil
	}

	read.RawToken = strings.TrimRight(string(frame), "\r\n")

	return read, nil
}
