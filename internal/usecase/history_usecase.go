package usecase

import (
	"context"

	"macts/internal/domain/entity"
)

// HistoryUsecase records confirmed taps and serves the report screens.
type HistoryUsecase interface {
	// RecordTap appends one confirmed tap to the venue's history. For
	// venues that toggle between entry and exit it derives the IN/OUT
	// status unless the decision snapshot already carries one.
	RecordTap(ctx context.Context, decision *entity.TapDecision) (*entity.TapRecord, error)

	// VenueHistory returns a subject's confirmed taps for a venue, most
	// recent first.
	VenueHistory(ctx context.Context, userID string, venue entity.Venue) ([]*entity.TapRecord, error)
}
