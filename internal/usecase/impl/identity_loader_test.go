package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"macts/internal/domain/entity"
	mockRepo "macts/internal/mocks/repository"
	mockUC "macts/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu   sync.Mutex
	refs []*entity.IdentityReference
}

func (s *recordingSink) OnReferenceLoaded(ref *entity.IdentityReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs = append(s.refs, ref)
}

func (s *recordingSink) loaded() []*entity.IdentityReference {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.IdentityReference(nil), s.refs...)
}

func newTestLoader(venue entity.Venue, students *mockRepo.MockStudentRepository, devices *mockRepo.MockDeviceRepository, sink referenceSink) *IdentityLoader {
	return NewIdentityLoader(IdentityLoaderParams{
		SubjectID: testSubjectID,
		Venue:     venue,
		Interval:  time.Hour,
		Logger:    newTestLogger(),
		Students:  students,
		Devices:   devices,
		Sink:      sink,
	})
}

func TestIdentityLoader_LoadOnce_TagVenue(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	device := newTestDevice(testSubjectID)

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(device, nil)

	loader := newTestLoader(entity.VenueAttendance, students, devices, sink)
	require.NoError(t, loader.LoadOnce(context.Background()))

	refs := sink.loaded()
	require.Len(t, refs, 1)
	assert.Equal(t, "03AB7F21", refs[0].TagValue)
	assert.Equal(t, profile.TUPTID, refs[0].Profile.TUPTID)
	// The device rides along for push alerts but does not drive matching.
	require.NotNil(t, refs[0].Device)
	assert.Equal(t, device.FCMToken, refs[0].Device.FCMToken)
}

func TestIdentityLoader_LoadOnce_TagVenueWithoutDevice(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError)

	loader := newTestLoader(entity.VenueLibrary, students, devices, sink)
	require.NoError(t, loader.LoadOnce(context.Background()))

	refs := sink.loaded()
	require.Len(t, refs, 1)
	assert.Equal(t, "03AB7F21", refs[0].TagValue)
	assert.Nil(t, refs[0].Device)
}

func TestIdentityLoader_LoadOnce_DeviceGatedVenue(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	device := newTestDevice(testSubjectID)

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(device, nil)

	loader := newTestLoader(entity.VenueGatepass, students, devices, sink)
	require.NoError(t, loader.LoadOnce(context.Background()))

	refs := sink.loaded()
	require.Len(t, refs, 1)
	// The gate matches the registered device token, not the RFID tag.
	assert.Equal(t, device.RegistrationToken, refs[0].TagValue)
	require.NotNil(t, refs[0].Device)
	assert.Equal(t, device.SerialNumber, refs[0].Device.SerialNumber)
}

func TestIdentityLoader_LoadOnce_DeviceGatedVenueRequiresDevice(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError)

	loader := newTestLoader(entity.VenueGatepass, students, devices, sink)
	err := loader.LoadOnce(context.Background())

	require.Error(t, err)
	assert.Empty(t, sink.loaded())
}

func TestIdentityLoader_LoadOnce_ProfileFetchFails(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError)

	loader := newTestLoader(entity.VenueAttendance, students, devices, sink)
	err := loader.LoadOnce(context.Background())

	require.Error(t, err)
	assert.Empty(t, sink.loaded())
}

func TestIdentityLoader_StartLoadsImmediatelyAndStops(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	sink := &recordingSink{}

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	device := newTestDevice(testSubjectID)

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil)
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(device, nil)

	loader := newTestLoader(entity.VenueAttendance, students, devices, sink)
	loader.Start(context.Background())

	assert.Eventually(t, func() bool {
		return len(sink.loaded()) == 1
	}, time.Second, 5*time.Millisecond)

	loader.Stop()
	// Stop is idempotent.
	loader.Stop()
}

func TestIdentityLoader_FailedRefreshKeepsLastReference(t *testing.T) {
	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)

	history := mockUC.NewMockHistoryUsecase(t)
	coordinator := NewTapCoordinator(TapCoordinatorParams{
		SubjectID: testSubjectID,
		Venue:     entity.VenueAttendance,
		Tap:       newTestTapConfig(),
		Logger:    newTestLogger(),
		History:   history,
	})
	t.Cleanup(coordinator.Close)

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile

	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(profile, nil).Once()
	devices.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError).Once()

	loader := newTestLoader(entity.VenueAttendance, students, devices, coordinator)
	require.NoError(t, loader.LoadOnce(context.Background()))

	// The next refresh fails; the coordinator must keep matching against
	// the last good reference.
	students.EXPECT().FindByUser(mock.Anything, testSubjectID).Return(nil, assert.AnError).Once()
	require.Error(t, loader.LoadOnce(context.Background()))

	expectRecordTap(history).Once()
	decision := coordinator.OnTagRead(entity.TagRead{
		Venue:    entity.VenueAttendance,
		RawToken: "03AB7F21",
	})
	assert.Equal(t, entity.OutcomeMatched, decision.Outcome)
}
