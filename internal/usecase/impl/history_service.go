package impl

import (
	"context"

	"macts/internal/domain/entity"
	"macts/internal/domain/repository"
	"macts/internal/errors"
	"macts/internal/usecase"

	"github.com/google/uuid"
)

// ErrNotConfirmed is returned when a decision without a Matched outcome is
// handed to RecordTap.
var ErrNotConfirmed = errors.New("only matched decisions are recorded")

type historyService struct {
	taps repository.TapHistoryRepository
}

// NewHistoryService creates a new history service instance
func NewHistoryService(taps repository.TapHistoryRepository) usecase.HistoryUsecase {
	return &historyService{taps: taps}
}

// RecordTap appends one confirmed tap to the venue's history store. For
// venues that toggle between entry and exit, the status derives from the
// parity of the subject's confirmed taps on the same calendar day: first tap
// of the day is IN, the next OUT, and so on. A status already present on the
// snapshot (server-supplied on some feeds) wins.
func (s *historyService) RecordTap(ctx context.Context, decision *entity.TapDecision) (*entity.TapRecord, error) {
	if decision == nil || !decision.Matched() || decision.Snapshot == nil {
		return nil, ErrNotConfirmed
	}

	snap := decision.Snapshot

	status := snap.TapStatus
	if status == "" && decision.Venue.TracksInOut() {
		count, err := s.taps.CountForDay(ctx, snap.SubjectID, decision.Venue, decision.MatchedAt)
		if err != nil {
			return nil, errors.Wrap(err, "count taps for day")
		}
		if count%2 == 0 {
			status = entity.TapStatusIn
		} else {
			status = entity.TapStatusOut
		}
	}

	record := &entity.TapRecord{
		ID:                 uuid.New(),
		UserID:             snap.SubjectID,
		Venue:              decision.Venue,
		FirstName:          snap.FirstName,
		MiddleName:         snap.MiddleName,
		LastName:           snap.LastName,
		TUPTID:             snap.TUPTID,
		Course:             snap.Course,
		Section:            snap.Section,
		Email:              snap.Email,
		DeviceBrand:        snap.DeviceBrand,
		DeviceSerialNumber: snap.DeviceSerialNumber,
		TapStatus:          status,
		TaggedAt:           decision.MatchedAt,
	}

	if err := s.taps.Append(ctx, record); err != nil {
		return nil, errors.Wrap(err, "append tap record")
	}

	return record, nil
}

// VenueHistory returns a subject's confirmed taps for a venue, most recent
// first. Failures surface to the caller; they never affect live state.
func (s *historyService) VenueHistory(ctx context.Context, userID string, venue entity.Venue) ([]*entity.TapRecord, error) {
	records, err := s.taps.ListByUser(ctx, userID, venue, 0)
	if err != nil {
		return nil, errors.Wrap(err, "list tap history")
	}

	return records, nil
}
