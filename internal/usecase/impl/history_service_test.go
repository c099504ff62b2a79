package impl

import (
	"context"
	"testing"
	"time"

	"macts/internal/domain/entity"
	mockRepo "macts/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMatchedDecision(venue entity.Venue, status string) *entity.TapDecision {
	ref := newTestReference(testSubjectID, "03AB7F21")

	return &entity.TapDecision{
		Outcome:   entity.OutcomeMatched,
		Venue:     venue,
		MatchedAt: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
		Snapshot: &entity.TapSnapshot{
			SubjectID:  testSubjectID,
			FirstName:  ref.Profile.FirstName,
			MiddleName: ref.Profile.MiddleName,
			LastName:   ref.Profile.LastName,
			TUPTID:     ref.Profile.TUPTID,
			Course:     ref.Profile.Course,
			Section:    ref.Profile.Section,
			Email:      ref.Profile.Email,
			Setting:    venue.Label(),
			TapStatus:  status,
		},
	}
}

func TestHistoryService_RecordTap_RejectsUnconfirmed(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	ctx := context.Background()

	_, err := service.RecordTap(ctx, nil)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	_, err = service.RecordTap(ctx, &entity.TapDecision{
		Outcome: entity.OutcomeRejectedCooldown,
		Venue:   entity.VenueAttendance,
	})
	assert.ErrorIs(t, err, ErrNotConfirmed)

	_, err = service.RecordTap(ctx, &entity.TapDecision{
		Outcome: entity.OutcomeMatched,
		Venue:   entity.VenueAttendance,
	})
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestHistoryService_RecordTap_AttendanceHasNoStatus(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	decision := newMatchedDecision(entity.VenueAttendance, "")

	taps.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*entity.TapRecord")).
		Return(nil).
		Once()

	record, err := service.RecordTap(context.Background(), decision)
	require.NoError(t, err)
	assert.Empty(t, record.TapStatus)
	assert.Equal(t, testSubjectID, record.UserID)
	assert.Equal(t, decision.MatchedAt, record.TaggedAt)
	assert.NotEqual(t, uuid.Nil, record.ID)
}

func TestHistoryService_RecordTap_DerivesInOutFromDayParity(t *testing.T) {
	tests := []struct {
		name       string
		priorToday int64
		want       string
	}{
		{name: "first tap of the day is IN", priorToday: 0, want: entity.TapStatusIn},
		{name: "second tap of the day is OUT", priorToday: 1, want: entity.TapStatusOut},
		{name: "parity carries across pairs", priorToday: 4, want: entity.TapStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := mockRepo.NewMockTapHistoryRepository(t)
			service := NewHistoryService(taps)

			decision := newMatchedDecision(entity.VenueLibrary, "")

			taps.EXPECT().
				CountForDay(mock.Anything, testSubjectID, entity.VenueLibrary, decision.MatchedAt).
				Return(tt.priorToday, nil).
				Once()
			taps.EXPECT().
				Append(mock.Anything, mock.MatchedBy(func(record *entity.TapRecord) bool {
					return record.TapStatus == tt.want
				})).
				Return(nil).
				Once()

			record, err := service.RecordTap(context.Background(), decision)
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.TapStatus)
		})
	}
}

func TestHistoryService_RecordTap_FeedStatusWins(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	// The library feed already classified this tap; no parity lookup.
	decision := newMatchedDecision(entity.VenueLibrary, entity.TapStatusOut)

	taps.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*entity.TapRecord")).
		Return(nil).
		Once()

	record, err := service.RecordTap(context.Background(), decision)
	require.NoError(t, err)
	assert.Equal(t, entity.TapStatusOut, record.TapStatus)
}

func TestHistoryService_RecordTap_CountFailure(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	decision := newMatchedDecision(entity.VenueGym, "")

	taps.EXPECT().
		CountForDay(mock.Anything, testSubjectID, entity.VenueGym, decision.MatchedAt).
		Return(int64(0), assert.AnError).
		Once()

	_, err := service.RecordTap(context.Background(), decision)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHistoryService_RecordTap_AppendFailure(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	decision := newMatchedDecision(entity.VenueAttendance, "")

	taps.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*entity.TapRecord")).
		Return(assert.AnError).
		Once()

	_, err := service.RecordTap(context.Background(), decision)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHistoryService_VenueHistory(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	expected := []*entity.TapRecord{
		{ID: uuid.New(), UserID: testSubjectID, Venue: entity.VenueLibrary, TapStatus: entity.TapStatusOut},
		{ID: uuid.New(), UserID: testSubjectID, Venue: entity.VenueLibrary, TapStatus: entity.TapStatusIn},
	}

	taps.EXPECT().
		ListByUser(mock.Anything, testSubjectID, entity.VenueLibrary, 0).
		Return(expected, nil).
		Once()

	records, err := service.VenueHistory(context.Background(), testSubjectID, entity.VenueLibrary)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestHistoryService_VenueHistory_Failure(t *testing.T) {
	taps := mockRepo.NewMockTapHistoryRepository(t)
	service := NewHistoryService(taps)

	taps.EXPECT().
		ListByUser(mock.Anything, testSubjectID, entity.VenueRegistrar, 0).
		Return(nil, assert.AnError).
		Once()

	_, err := service.VenueHistory(context.Background(), testSubjectID, entity.VenueRegistrar)
	assert.ErrorIs(t, err, assert.AnError)
}
