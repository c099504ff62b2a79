// Package service defines the domain's outbound service ports.
package service

import (
	"context"

	"macts/internal/domain/entity"
)

// TapStreamHandler consumes one raw tag read from a venue feed.
type TapStreamHandler func(read entity.TagRead)

// TapStreamSource subscribes to a venue's reader feed. Subscribe blocks
// until ctx is cancelled or the feed fails; reconnection policy belongs to
// the caller.
type TapStreamSource interface {
	Subscribe(ctx context.Context, venue entity.Venue, handler TapStreamHandler) error
}
