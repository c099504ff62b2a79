package usecase

import (
	"context"

	"macts/internal/domain/entity"
)

// StudentInput carries the fields of a student registration or update.
type StudentInput struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	TUPTID     string `json:"tuptId"`
	Course     string `json:"course"`
	Section    string `json:"section"`
	Email      string `json:"email"`
	PhotoURL   string `json:"photoUrl"`
	TagValue   string `json:"tagValue"`
}

// DeviceInput carries the fields of a device registration or update.
type DeviceInput struct {
	Brand             string `json:"device_brand"`
	SerialNumber      string `json:"device_serialNumber"`
	RegistrationToken string `json:"deviceRegistration"`
	FCMToken          string `json:"fcm_token"`
}

// RegistryUsecase serves the student info and device registration screens.
type RegistryUsecase interface {
	// GetStudentInfo retrieves a student's registry record.
	GetStudentInfo(ctx context.Context, userID string) (*entity.StudentProfile, error)

	// RegisterStudent creates a student record for a user directory account.
	RegisterStudent(ctx context.Context, userID string, input *StudentInput) (*entity.StudentProfile, error)

	// UpdateStudent replaces the mutable fields of a student record.
	UpdateStudent(ctx context.Context, userID string, input *StudentInput) (*entity.StudentProfile, error)

	// GetDevice retrieves a student's registered device.
	GetDevice(ctx context.Context, userID string) (*entity.RegisteredDevice, error)

	// RegisterDevice enrolls a device for gatepass matching.
	RegisterDevice(ctx context.Context, userID string, input *DeviceInput) (*entity.RegisteredDevice, error)

	// UpdateDevice replaces the mutable fields of a device registration.
	UpdateDevice(ctx context.Context, userID string, input *DeviceInput) (*entity.RegisteredDevice, error)

	// RegistrationQR renders the device registration token as a QR PNG for
	// enrollment kiosks.
	RegistrationQR(ctx context.Context, userID string) ([]byte, error)
}
