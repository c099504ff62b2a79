package impl

import (
	"context"
	"testing"

	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	"macts/internal/domain/repository"
	mockRepo "macts/internal/mocks/repository"
	mockSvc "macts/internal/mocks/service"
	"macts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (usecase.RegistryUsecase, *mockRepo.MockStudentRepository, *mockRepo.MockDeviceRepository, *mockSvc.MockQRCodeService) {
	t.Helper()

	students := mockRepo.NewMockStudentRepository(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)

	return NewRegistryService(students, devices, qrcodes), students, devices, qrcodes
}

func TestRegistryService_GetStudentInfo(t *testing.T) {
	service, students, _, _ := newTestRegistry(t)
	ctx := context.Background()

	profile := &newTestReference(testSubjectID, "03AB7F21").Profile
	students.EXPECT().FindByUser(ctx, testSubjectID).Return(profile, nil)

	got, err := service.GetStudentInfo(ctx, testSubjectID)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestRegistryService_GetStudentInfo_NotFound(t *testing.T) {
	service, students, _, _ := newTestRegistry(t)
	ctx := context.Background()

	students.EXPECT().FindByUser(ctx, testSubjectID).Return(nil, repository.ErrStudentNotFound)

	_, err := service.GetStudentInfo(ctx, testSubjectID)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestRegistryService_RegisterStudent(t *testing.T) {
	service, students, _, _ := newTestRegistry(t)
	ctx := context.Background()

	input := &usecase.StudentInput{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		TUPTID:    "TUPT-21-1234",
		Course:    "BSIT",
		Section:   "3A",
		Email:     "juan.delacruz@tup.edu.ph",
		TagValue:  "03AB7F21",
	}

	students.EXPECT().
		CreateProfile(ctx, mock.MatchedBy(func(profile *entity.StudentProfile) bool {
			return profile.UserID == testSubjectID && profile.TagValue == "03AB7F21"
		})).
		Return(nil)

	profile, err := service.RegisterStudent(ctx, testSubjectID, input)
	require.NoError(t, err)
	assert.Equal(t, "Juan", profile.FirstName)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestRegistryService_RegisterStudent_Duplicate(t *testing.T) {
	service, students, _, _ := newTestRegistry(t)
	ctx := context.Background()

	students.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.StudentProfile")).
		Return(repository.ErrDuplicateStudent)

	_, err := service.RegisterStudent(ctx, testSubjectID, &usecase.StudentInput{TagValue: "03AB7F21"})
	assert.ErrorIs(t, err, domainerrors.ErrStudentAlreadyRegistered)
}

func TestRegistryService_UpdateStudent_KeepsTagWhenOmitted(t *testing.T) {
	service, students, _, _ := newTestRegistry(t)
	ctx := context.Background()

	existing := &newTestReference(testSubjectID, "03AB7F21").Profile
	students.EXPECT().FindByUser(ctx, testSubjectID).Return(existing, nil)
	students.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(profile *entity.StudentProfile) bool {
			return profile.TagValue == "03AB7F21" && profile.Section == "4A"
		})).
		Return(nil)

	updated, err := service.UpdateStudent(ctx, testSubjectID, &usecase.StudentInput{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		TUPTID:    "TUPT-21-1234",
		Course:    "BSIT",
		Section:   "4A",
		Email:     "juan.delacruz@tup.edu.ph",
	})
	require.NoError(t, err)
	assert.Equal(t, "4A", updated.Section)
	assert.Equal(t, "03AB7F21", updated.TagValue)
}

func TestRegistryService_RegisterDevice(t *testing.T) {
	service, _, devices, _ := newTestRegistry(t)
	ctx := context.Background()

	devices.EXPECT().
		Create(ctx, mock.MatchedBy(func(device *entity.RegisteredDevice) bool {
			return device.UserID == testSubjectID && device.ID != uuid.Nil
		})).
		Return(nil)

	device, err := service.RegisterDevice(ctx, testSubjectID, &usecase.DeviceInput{
		Brand:             "Samsung",
		SerialNumber:      "SN-0042",
		RegistrationToken: "reg-token-0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "Samsung", device.Brand)
}

func TestRegistryService_RegisterDevice_Duplicate(t *testing.T) {
	service, _, devices, _ := newTestRegistry(t)
	ctx := context.Background()

	devices.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RegisteredDevice")).
		Return(repository.ErrDuplicateDevice)

	_, err := service.RegisterDevice(ctx, testSubjectID, &usecase.DeviceInput{Brand: "Samsung"})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyRegistered)
}

func TestRegistryService_RegistrationQR(t *testing.T) {
	service, _, devices, qrcodes := newTestRegistry(t)
	ctx := context.Background()

	device := newTestDevice(testSubjectID)
	devices.EXPECT().FindByUser(ctx, testSubjectID).Return(device, nil)
	qrcodes.EXPECT().GenerateRegistrationQR(device.RegistrationToken).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.RegistrationQR(ctx, testSubjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRegistryService_RegistrationQR_NoDevice(t *testing.T) {
	service, _, devices, _ := newTestRegistry(t)
	ctx := context.Background()

	devices.EXPECT().FindByUser(ctx, testSubjectID).Return(nil, repository.ErrDeviceNotFound)

	_, err := service.RegistrationQR(ctx, testSubjectID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
