package impl

import (
	"context"
	"log/slog"
	"sync"

	"macts/config"
	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	"macts/internal/domain/repository"
	"macts/internal/domain/service"
	"macts/internal/usecase"

	"go.uber.org/fx"
)

type sessionKey struct {
	userID string
	venue  entity.Venue
}

type tapSession struct {
	coordinator *TapCoordinator
	loader      *IdentityLoader
}

// SessionManagerParams holds dependencies for the session manager.
type SessionManagerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Students  repository.StudentRepository
	Devices   repository.DeviceRepository
	History   usecase.HistoryUsecase
	Publisher service.EventPublisher `optional:"true"`
	Alerts    service.AlertService   `optional:"true"`
}

// sessionManager implements usecase.TapSessionUsecase. It owns one
// coordinator plus one identity loader per open (subject, venue) session and
// fans reader feed reads in to them.
type sessionManager struct {
	cfg       *config.Config
	logger    *slog.Logger
	students  repository.StudentRepository
	devices   repository.DeviceRepository
	history   usecase.HistoryUsecase
	publisher service.EventPublisher
	alerts    service.AlertService

	baseCtx    context.Context
	cancelBase context.CancelFunc

	mu       sync.RWMutex
	sessions map[sessionKey]*tapSession
}

// NewSessionManager creates the session manager.
func NewSessionManager(params SessionManagerParams) usecase.TapSessionUsecase {
	baseCtx, cancel := context.WithCancel(context.Background())

	return &sessionManager{
		cfg:        params.Config,
		logger:     params.Logger,
		students:   params.Students,
		devices:    params.Devices,
		history:    params.History,
		publisher:  params.Publisher,
		alerts:     params.Alerts,
		baseCtx:    baseCtx,
		cancelBase: cancel,
		sessions:   make(map[sessionKey]*tapSession),
	}
}

// StartSession opens a session for a subject at a live venue. The loader
// performs its first registry fetch immediately; until it succeeds, tag
// reads for the subject classify as no-match.
func (m *sessionManager) StartSession(ctx context.Context, userID string, venue entity.Venue) error {
	if !venue.SupportsLive() {
		return domainerrors.ErrVenueNotLive
	}

	key := sessionKey{userID: userID, venue: venue}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[key]; ok {
		return domainerrors.ErrSessionAlreadyOpen
	}

	coordinator := NewTapCoordinator(TapCoordinatorParams{
		SubjectID: userID,
		Venue:     venue,
		Tap:       m.cfg.Tap,
		Logger:    m.logger,
		History:   m.history,
		Publisher: m.publisher,
		Alerts:    m.alerts,
	})

	loader := NewIdentityLoader(IdentityLoaderParams{
		SubjectID: userID,
		Venue:     venue,
		Interval:  m.cfg.Tap.ReferencePollInterval,
		Logger:    m.logger,
		Students:  m.students,
		Devices:   m.devices,
		Sink:      coordinator,
	})

	// Sessions outlive the HTTP request that opened them; the loader runs
	// on the manager's context, not the request's.
	loader.Start(m.baseCtx)

	m.sessions[key] = &tapSession{coordinator: coordinator, loader: loader}

	m.logger.Info("dashboard session opened",
		slog.String("subject_id", userID),
		slog.String("venue", venue.String()),
	)

	return nil
}

// StopSession closes a subject's session at a venue.
func (m *sessionManager) StopSession(userID string, venue entity.Venue) error {
	key := sessionKey{userID: userID, venue: venue}

	m.mu.Lock()
	session, ok := m.sessions[key]
	if ok {
		delete(m.sessions, key)
	}
	m.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	session.loader.Stop()
	session.coordinator.Close()

	m.logger.Info("dashboard session closed",
		slog.String("subject_id", userID),
		slog.String("venue", venue.String()),
	)

	return nil
}

// StopAll closes every open session. Called on shutdown.
func (m *sessionManager) StopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[sessionKey]*tapSession)
	m.mu.Unlock()

	m.cancelBase()
	for _, session := range sessions {
		session.loader.Stop()
		session.coordinator.Close()
	}
}

// Dispatch routes one raw tag read to every open session for its venue. The
// coordinators themselves serialize their state transitions.
func (m *sessionManager) Dispatch(read entity.TagRead) {
	m.mu.RLock()
	coordinators := make([]*TapCoordinator, 0, len(m.sessions))
	for key, session := range m.sessions {
		if key.venue == read.Venue {
			coordinators = append(coordinators, session.coordinator)
		}
	}
	m.mu.RUnlock()

	for _, coordinator := range coordinators {
		coordinator.OnTagRead(read)
	}
}

// SessionState returns the display state of an open session.
func (m *sessionManager) SessionState(userID string, venue entity.Venue) (*usecase.TapDashboardState, error) {
	m.mu.RLock()
	session, ok := m.sessions[sessionKey{userID: userID, venue: venue}]
	m.mu.RUnlock()

	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	state := session.coordinator.State()

	return &state, nil
}
