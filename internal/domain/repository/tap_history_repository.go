package repository

import (
	"context"
	"time"

	"macts/internal/domain/entity"
)

// TapHistoryRepository is the append-only store of confirmed taps. One
// logical history exists per venue; rows are never updated or deleted.
type TapHistoryRepository interface {
	// Append persists one confirmed tap.
	Append(ctx context.Context, record *entity.TapRecord) error

	// ListByUser retrieves a subject's history for a venue, most recent
	// first. limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID string, venue entity.Venue, limit int) ([]*entity.TapRecord, error)

	// CountForDay counts a subject's confirmed taps at a venue on the
	// calendar day containing day (local time).
	CountForDay(ctx context.Context, userID string, venue entity.Venue, day time.Time) (int64, error)
}
