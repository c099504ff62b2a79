// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"macts/config"
	"macts/internal/domain/entity"
	"macts/internal/domain/service"
	"macts/internal/usecase"
)

// sideEffectTimeout bounds the fire-and-forget history write and event
// publish issued for a confirmed tap.
const sideEffectTimeout = 10 * time.Second

// referenceSink receives freshly loaded identity references.
type referenceSink interface {
	OnReferenceLoaded(ref *entity.IdentityReference)
}

// TapCoordinatorParams holds the dependencies of a coordinator. One
// coordinator is scoped to exactly one subject at one venue; Publisher and
// Alerts are optional.
type TapCoordinatorParams struct {
	SubjectID string
	Venue     entity.Venue
	Tap       *config.TapConfig
	Logger    *slog.Logger
	History   usecase.HistoryUsecase
	Publisher service.EventPublisher
	Alerts    service.AlertService
}

// TapCoordinator owns the live matching, cooldown, and display state for one
// subject at one venue. OnTagRead and OnReferenceLoaded may be called from
// independent goroutines; all state transitions are serialized behind a
// single mutex so a reference swap is atomic relative to an in-progress
// match decision.
type TapCoordinator struct {
	subjectID string
	venue     entity.Venue
	cooldown  time.Duration
	alertHold time.Duration
	logger    *slog.Logger
	history   usecase.HistoryUsecase
	publisher service.EventPublisher
	alerts    service.AlertService

	// now is swappable for tests.
	now func() time.Time

	mu               sync.Mutex
	closed           bool
	reference        *entity.IdentityReference
	cooldownActive   bool
	cooldownDeadline time.Time
	currentTap       *entity.TapDecision
	previousTap      *entity.TapDecision
	alertVisible     bool
	alertTimer       *time.Timer

	sideEffects sync.WaitGroup
}

// NewTapCoordinator creates a coordinator with no reference loaded. Tag
// reads arriving before the first reference load are rejected as no-match.
func NewTapCoordinator(params TapCoordinatorParams) *TapCoordinator {
	tap := params.Tap
	if tap == nil {
		tap = &config.TapConfig{}
	}
	cfg := *tap
	cfg.ApplyDefaults()

	return &TapCoordinator{
		subjectID: params.SubjectID,
		venue:     params.Venue,
		cooldown:  cfg.CooldownDuration,
		alertHold: cfg.AlertDisplayDuration,
		logger:    params.Logger,
		history:   params.History,
		publisher: params.Publisher,
		alerts:    params.Alerts,
		now:       time.Now,
	}
}

// OnReferenceLoaded replaces the identity reference unconditionally
// (last-write-wins, no merge). Safe to call at any time, including while tag
// reads are in flight. The coordinator keeps its own deep copy so later
// mutations by the caller cannot leak into snapshot state.
func (c *TapCoordinator) OnReferenceLoaded(ref *entity.IdentityReference) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.reference = ref.Clone()
}

// OnTagRead classifies one raw tag read against the current reference and
// cooldown state, returning the decision. Matched decisions trigger a
// fire-and-forget history write and event publish; their failure is logged
// and never alters the decision.
func (c *TapCoordinator) OnTagRead(read entity.TagRead) entity.TapDecision {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if c.closed {
		return entity.TapDecision{Outcome: entity.OutcomeRejectedNoMatch, Venue: c.venue, MatchedAt: now}
	}

	// Cooldown auto-clears lazily: no timer means a disposed coordinator
	// can never fire a stale expiry callback.
	if c.cooldownActive && !now.Before(c.cooldownDeadline) {
		c.cooldownActive = false
	}

	// A read before the first reference load is a normal transient state,
	// not a fault.
	if c.reference == nil || read.RawToken == "" || read.RawToken != c.reference.TagValue {
		return entity.TapDecision{Outcome: entity.OutcomeRejectedNoMatch, Venue: c.venue, MatchedAt: now}
	}

	// The server-computed flag is authoritative when the feed carries one;
	// otherwise the local cooldown clock decides.
	excessive := c.cooldownActive
	if read.ExcessiveTap != nil {
		excessive = *read.ExcessiveTap
	}
	if excessive {
		c.showAlert()
		c.pushAlertAsync()

		return entity.TapDecision{Outcome: entity.OutcomeRejectedCooldown, Venue: c.venue, MatchedAt: now}
	}

	c.cooldownActive = true
	c.cooldownDeadline = now.Add(c.cooldown)

	decision := &entity.TapDecision{
		Outcome:   entity.OutcomeMatched,
		Venue:     c.venue,
		MatchedAt: now,
		Snapshot:  c.snapshot(read),
	}

	c.previousTap = c.currentTap
	c.currentTap = decision
	c.persistAsync(decision)

	return *decision
}

// State returns the current display state. The returned decisions are
// immutable once produced, so sharing pointers is safe.
func (c *TapCoordinator) State() usecase.TapDashboardState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return usecase.TapDashboardState{
		CurrentTap:   c.currentTap,
		PreviousTap:  c.previousTap,
		AlertVisible: c.alertVisible,
	}
}

// Close disposes the coordinator: pending timers are stopped, subsequent
// inputs become no-ops, and in-flight side effects are drained. Display
// state survives Close so a reconnecting feed does not blank the dashboard.
func (c *TapCoordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	if c.alertTimer != nil {
		c.alertTimer.Stop()
		c.alertTimer = nil
	}
	c.mu.Unlock()

	c.sideEffects.Wait()
}

// snapshot copies the display fields of the current reference plus the
// read-specific fields. Callers hold c.mu.
func (c *TapCoordinator) snapshot(read entity.TagRead) *entity.TapSnapshot {
	ref := c.reference
	snap := &entity.TapSnapshot{
		SubjectID:  ref.SubjectID,
		FirstName:  ref.Profile.FirstName,
		MiddleName: ref.Profile.MiddleName,
		LastName:   ref.Profile.LastName,
		TUPTID:     ref.Profile.TUPTID,
		Course:     ref.Profile.Course,
		Section:    ref.Profile.Section,
		Email:      ref.Profile.Email,
		PhotoURL:   ref.Profile.PhotoURL,
		Setting:    c.venue.Label(),
		TapStatus:  read.TapStatus,
	}
	if ref.Device != nil {
		snap.DeviceBrand = ref.Device.Brand
		snap.DeviceSerialNumber = ref.Device.SerialNumber
	}

	return snap
}

// showAlert makes the excessive-tap alert visible and (re)arms its
// auto-dismiss timer. Callers hold c.mu.
func (c *TapCoordinator) showAlert() {
	c.alertVisible = true
	if c.alertTimer != nil {
		c.alertTimer.Stop()
	}
	c.alertTimer = time.AfterFunc(c.alertHold, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.closed {
			c.alertVisible = false
		}
	})
}

// pushAlertAsync notifies the subject's registered device about the
// excessive tap, when a push channel is configured. Callers hold c.mu.
func (c *TapCoordinator) pushAlertAsync() {
	if c.alerts == nil || c.reference == nil || c.reference.Device == nil {
		return
	}
	token := c.reference.Device.FCMToken
	if token == "" {
		return
	}

	venue := c.venue.Label()
	c.sideEffects.Add(1)
	go func() {
		defer c.sideEffects.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		err := c.alerts.SendAlert(ctx, token,
			"Excessive tapping detected",
			"You've already tapped at the "+venue+". Please wait before tapping again.",
			map[string]string{"venue": c.venue.String()},
		)
		if err != nil {
			c.logger.Warn("failed to push excessive-tap alert",
				slog.String("subject_id", c.subjectID),
				slog.String("venue", c.venue.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// persistAsync issues the append-only history write and the confirmed-tap
// event publish for a matched decision. Callers hold c.mu.
func (c *TapCoordinator) persistAsync(decision *entity.TapDecision) {
	c.sideEffects.Add(1)
	go func() {
		defer c.sideEffects.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		record, err := c.history.RecordTap(ctx, decision)
		if err != nil {
			c.logger.Error("failed to record confirmed tap",
				slog.String("subject_id", c.subjectID),
				slog.String("venue", c.venue.String()),
				slog.Any("error", err),
			)

			return
		}

		if c.publisher == nil {
			return
		}

		event := &service.TapEvent{
			RecordID:  record.ID.String(),
			SubjectID: record.UserID,
			Venue:     record.Venue.String(),
			TUPTID:    record.TUPTID,
			TapStatus: record.TapStatus,
			TaggedAt:  record.TaggedAt,
		}
		if err := c.publisher.PublishTapEvent(ctx, event); err != nil {
			c.logger.Warn("failed to publish tap event",
				slog.String("record_id", event.RecordID),
				slog.String("venue", event.Venue),
				slog.Any("error", err),
			)
		}
	}()
}
