package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"macts/internal/domain/entity"
	"macts/internal/domain/repository"
	"macts/internal/errors"
)

// IdentityLoaderParams holds the dependencies of a loader.
type IdentityLoaderParams struct {
	SubjectID string
	Venue     entity.Venue
	Interval  time.Duration
	Logger    *slog.Logger
	Students  repository.StudentRepository
	Devices   repository.DeviceRepository
	Sink      referenceSink
}

// IdentityLoader periodically fetches the subject's identity reference from
// the registry and pushes it into the coordinator. A fetch failure keeps the
// last successfully loaded reference and is retried on the next tick; the
// matching loop is never interrupted by a transient registry error.
type IdentityLoader struct {
	subjectID string
	venue     entity.Venue
	interval  time.Duration
	logger    *slog.Logger
	students  repository.StudentRepository
	devices   repository.DeviceRepository
	sink      referenceSink

	stopOnce sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewIdentityLoader creates a loader; call Start to begin polling.
func NewIdentityLoader(params IdentityLoaderParams) *IdentityLoader {
	return &IdentityLoader{
		subjectID: params.SubjectID,
		venue:     params.Venue,
		interval:  params.Interval,
		logger:    params.Logger,
		students:  params.Students,
		devices:   params.Devices,
		sink:      params.Sink,
		done:      make(chan struct{}),
	}
}

// Start performs an immediate load and then polls on the configured
// interval until Stop is called or ctx is cancelled.
func (l *IdentityLoader) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)

	go func() {
		defer close(l.done)

		if err := l.LoadOnce(ctx); err != nil {
			l.logger.Warn("initial identity reference load failed",
				slog.String("subject_id", l.subjectID),
				slog.String("venue", l.venue.String()),
				slog.Any("error", err),
			)
		}

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.LoadOnce(ctx); err != nil {
					l.logger.Warn("identity reference refresh failed, keeping last reference",
						slog.String("subject_id", l.subjectID),
						slog.String("venue", l.venue.String()),
						slog.Any("error", err),
					)
				}
			}
		}
	}()
}

// Stop ends polling and waits for the loop to exit.
func (l *IdentityLoader) Stop() {
	l.stopOnce.Do(func() {
		if l.cancel != nil {
			l.cancel()
		}
		<-l.done
	})
}

// LoadOnce fetches the reference and, on success, hands it to the sink. For
// device-gated venues the matching value is the registered device token and
// the device snapshot fields ride along.
func (l *IdentityLoader) LoadOnce(ctx context.Context) error {
	profile, err := l.students.FindByUser(ctx, l.subjectID)
	if err != nil {
		return errors.Wrap(err, "fetch student profile")
	}

	ref := &entity.IdentityReference{
		SubjectID: l.subjectID,
		TagValue:  profile.TagValue,
		Profile:   *profile,
	}

	if l.venue.DeviceGated() {
		device, err := l.devices.FindByUser(ctx, l.subjectID)
		if err != nil {
			return errors.Wrap(err, "fetch registered device")
		}
		ref.Device = device
		ref.TagValue = device.RegistrationToken
	} else if device, err := l.devices.FindByUser(ctx, l.subjectID); err == nil {
		// Not required for matching, but carries the push token for
		// excessive-tap alerts.
		ref.Device = device
	}

	l.sink.OnReferenceLoaded(ref)

	return nil
}
