package impl

import (
	"context"
	"testing"
	"time"

	"macts/config"
	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	mockRepo "macts/internal/mocks/repository"
	mockUC "macts/internal/mocks/usecase"
	"macts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionManagerMocks struct {
	students *mockRepo.MockStudentRepository
	devices  *mockRepo.MockDeviceRepository
	history  *mockUC.MockHistoryUsecase
}

func newTestSessionManager(t *testing.T) (usecase.TapSessionUsecase, sessionManagerMocks) {
	t.Helper()

	mocks := sessionManagerMocks{
		students: mockRepo.NewMockStudentRepository(t),
		devices:  mockRepo.NewMockDeviceRepository(t),
		history:  mockUC.NewMockHistoryUsecase(t),
	}

	manager := NewSessionManager(SessionManagerParams{
		Config:   &config.Config{Tap: newTestTapConfig()},
		Logger:   newTestLogger(),
		Students: mocks.students,
		Devices:  mocks.devices,
		History:  mocks.history,
	})
	t.Cleanup(manager.StopAll)

	return manager, mocks
}

func TestSessionManager_StartSession_RejectsNonLiveVenue(t *testing.T) {
	manager, _ := newTestSessionManager(t)

	err := manager.StartSession(context.Background(), testSubjectID, entity.VenueRegistrar)
	assert.ErrorIs(t, err, domainerrors.ErrVenueNotLive)
}

func TestSessionManager_StartSession_RejectsDuplicate(t *testing.T) {
	manager, mocks := newTestSessionManager(t)

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	mocks.students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil).Maybe()
	mocks.devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError).Maybe()

	ctx := context.Background()
	require.NoError(t, manager.StartSession(ctx, testSubjectID, entity.VenueAttendance))

	err := manager.StartSession(ctx, testSubjectID, entity.VenueAttendance)
	assert.ErrorIs(t, err, domainerrors.ErrSessionAlreadyOpen)

	// The same subject may hold sessions at different venues.
	require.NoError(t, manager.StartSession(ctx, testSubjectID, entity.VenueLibrary))
}

func TestSessionManager_DispatchRoutesToVenueSessions(t *testing.T) {
	manager, mocks := newTestSessionManager(t)

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	mocks.students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	mocks.devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError)
	mocks.history.EXPECT().
		RecordTap(mock.Anything, mock.AnythingOfType("*entity.TapDecision")).
		Return(&entity.TapRecord{UserID: testSubjectID}, nil).
		Once()

	require.NoError(t, manager.StartSession(context.Background(), testSubjectID, entity.VenueAttendance))

	// Reads on another venue's feed never reach this session.
	manager.Dispatch(entity.TagRead{Venue: entity.VenueLibrary, RawToken: "03AB7F21"})

	// The loader's first fetch is asynchronous; keep dispatching until
	// the reference lands and the read matches. Cooldown guarantees only
	// one match no matter how many dispatches it takes.
	assert.Eventually(t, func() bool {
		manager.Dispatch(entity.TagRead{Venue: entity.VenueAttendance, RawToken: "03AB7F21"})
		state, err := manager.SessionState(testSubjectID, entity.VenueAttendance)

		return err == nil && state.CurrentTap != nil
	}, time.Second, 5*time.Millisecond)

	state, err := manager.SessionState(testSubjectID, entity.VenueAttendance)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentTap)
	assert.Equal(t, entity.OutcomeMatched, state.CurrentTap.Outcome)

	require.NoError(t, manager.StopSession(testSubjectID, entity.VenueAttendance))
}

func TestSessionManager_SessionState_UnknownSession(t *testing.T) {
	manager, _ := newTestSessionManager(t)

	_, err := manager.SessionState(testSubjectID, entity.VenueGym)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionManager_StopSession_UnknownSession(t *testing.T) {
	manager, _ := newTestSessionManager(t)

	err := manager.StopSession(testSubjectID, entity.VenueGym)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionManager_StopAllClosesEverySession(t *testing.T) {
	manager, mocks := newTestSessionManager(t)

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	mocks.students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil).Maybe()
	mocks.devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError).Maybe()

	ctx := context.Background()
	require.NoError(t, manager.StartSession(ctx, testSubjectID, entity.VenueAttendance))
	require.NoError(t, manager.StartSession(ctx, testSubjectID, entity.VenueGym))

	manager.StopAll()

	_, err := manager.SessionState(testSubjectID, entity.VenueAttendance)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	_, err = manager.SessionState(testSubjectID, entity.VenueGym)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
