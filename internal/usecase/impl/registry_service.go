package impl

import (
	"context"
	"time"

	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	"macts/internal/domain/repository"
	"macts/internal/domain/service"
	"macts/internal/errors"
	"macts/internal/usecase"

	"github.com/google/uuid"
)

type registryService struct {
	students repository.StudentRepository
	devices  repository.DeviceRepository
	qrcodes  service.QRCodeService
}

// NewRegistryService creates a new registry service instance
func NewRegistryService(
	students repository.StudentRepository,
	devices repository.DeviceRepository,
	qrcodes service.QRCodeService,
) usecase.RegistryUsecase {
	return &registryService{
		students: students,
		devices:  devices,
		qrcodes:  qrcodes,
	}
}

// GetStudentInfo retrieves a student's registry record.
func (s *registryService) GetStudentInfo(ctx context.Context, userID string) (*entity.StudentProfile, error) {
	profile, err := s.students.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by user")
	}

	return profile, nil
}

// RegisterStudent creates a student record for a user directory account.
func (s *registryService) RegisterStudent(ctx context.Context, userID string, input *usecase.StudentInput) (*entity.StudentProfile, error) {
	profile := &entity.StudentProfile{
		UserID:     userID,
		FirstName:  input.FirstName,
		MiddleName: input.MiddleName,
		LastName:   input.LastName,
		TUPTID:     input.TUPTID,
		Course:     input.Course,
		Section:    input.Section,
		Email:      input.Email,
		PhotoURL:   input.PhotoURL,
		TagValue:   input.TagValue,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.students.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudent) {
			return nil, domainerrors.ErrStudentAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create student profile")
	}

	return profile, nil
}

// UpdateStudent replaces the mutable fields of a student record.
func (s *registryService) UpdateStudent(ctx context.Context, userID string, input *usecase.StudentInput) (*entity.StudentProfile, error) {
	profile, err := s.GetStudentInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = input.FirstName
	profile.MiddleName = input.MiddleName
	profile.LastName = input.LastName
	profile.TUPTID = input.TUPTID
	profile.Course = input.Course
	profile.Section = input.Section
	profile.Email = input.Email
	if input.PhotoURL != "" {
		profile.PhotoURL = input.PhotoURL
	}
	if input.TagValue != "" {
		profile.TagValue = input.TagValue
	}
	profile.UpdatedAt = time.Now()

	if err := s.students.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update student profile")
	}

	return profile, nil
}

// GetDevice retrieves a student's registered device.
func (s *registryService) GetDevice(ctx context.Context, userID string) (*entity.RegisteredDevice, error) {
	device, err := s.devices.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by user")
	}

	return device, nil
}

// RegisterDevice enrolls a device for gatepass matching.
func (s *registryService) RegisterDevice(ctx context.Context, userID string, input *usecase.DeviceInput) (*entity.RegisteredDevice, error) {
	device := &entity.RegisteredDevice{
		ID:                uuid.New(),
		UserID:            userID,
		Brand:             input.Brand,
		SerialNumber:      input.SerialNumber,
		RegistrationToken: input.RegistrationToken,
		FCMToken:          input.FCMToken,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.devices.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateDevice replaces the mutable fields of a device registration.
func (s *registryService) UpdateDevice(ctx context.Context, userID string, input *usecase.DeviceInput) (*entity.RegisteredDevice, error) {
	device, err := s.GetDevice(ctx, userID)
	if err != nil {
		return nil, err
	}

	device.Brand = input.Brand
	device.SerialNumber = input.SerialNumber
	if input.RegistrationToken != "" {
		device.RegistrationToken = input.RegistrationToken
	}
	if input.FCMToken != "" {
		device.FCMToken = input.FCMToken
	}
	device.UpdatedAt = time.Now()

	if err := s.devices.Update(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}

	return device, nil
}

// RegistrationQR renders the device registration token as a QR PNG.
func (s *registryService) RegistrationQR(ctx context.Context, userID string) ([]byte, error) {
	device, err := s.GetDevice(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodes.GenerateRegistrationQR(device.RegistrationToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate registration QR")
	}

	return png, nil
}
