package repository

import (
	"context"

	"macts/internal/domain/entity"
	"macts/internal/errors"
)

var (
	// ErrDeviceNotFound is returned when a user has no registered device.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a device is already registered for the user.
	ErrDuplicateDevice = errors.New("device already registered")
)

// DeviceRepository provides access to the device registry used by
// device-gated venues.
type DeviceRepository interface {
	// FindByUser retrieves the registered device for an external user directory id.
	FindByUser(ctx context.Context, userID string) (*entity.RegisteredDevice, error)

	// Create persists a new device registration.
	Create(ctx context.Context, device *entity.RegisteredDevice) error

	// Update replaces the mutable fields of an existing registration.
	Update(ctx context.Context, device *entity.RegisteredDevice) error
}
