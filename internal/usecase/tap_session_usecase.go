// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"macts/internal/domain/entity"
)

// TapDashboardState is the live display state of one dashboard session: the
// two most recent confirmed taps and whether the excessive-tap alert is
// currently visible.
type TapDashboardState struct {
	CurrentTap   *entity.TapDecision `json:"currentTap,omitempty"`
	PreviousTap  *entity.TapDecision `json:"previousTap,omitempty"`
	AlertVisible bool                `json:"alertVisible"`
}

// TapSessionUsecase manages live dashboard sessions. A session binds one
// subject to one venue and owns a coordinator plus an identity loader;
// reader feed reads are fanned in through Dispatch.
type TapSessionUsecase interface {
	// StartSession opens a session for a subject at a live venue.
	StartSession(ctx context.Context, userID string, venue entity.Venue) error

	// StopSession closes a subject's session at a venue, releasing its
	// loader and any pending timers.
	StopSession(userID string, venue entity.Venue) error

	// StopAll closes every open session. Called on shutdown.
	StopAll()

	// Dispatch routes one raw tag read to every open session for its venue.
	Dispatch(read entity.TagRead)

	// SessionState returns the current display state of an open session.
	SessionState(userID string, venue entity.Venue) (*TapDashboardState, error)
}
