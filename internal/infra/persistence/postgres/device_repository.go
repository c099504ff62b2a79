package postgres

import (
	"context"

	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	"macts/internal/domain/repository"
	"macts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindByUser retrieves a student's registered device.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID string) (*entity.RegisteredDevice, error) {
	var deviceM model.RegisteredDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by user")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a new device registration.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.RegisteredDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device registration")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Update replaces the mutable fields of an existing registration.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.RegisteredDevice) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegisteredDeviceModel{}).
		Where("user_id = ?", device.UserID).
		Updates(fromDeviceDomain(device))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update device registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM RegisteredDeviceModel to a domain RegisteredDevice entity.
func toDeviceDomain(data *model.RegisteredDeviceModel) *entity.RegisteredDevice {
	if data == nil {
		return nil
	}

	return &entity.RegisteredDevice{
		ID:                data.ID,
		UserID:            data.UserID,
		Brand:             data.Brand,
		SerialNumber:      data.SerialNumber,
		RegistrationToken: data.RegistrationToken,
		FCMToken:          data.FCMToken,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain RegisteredDevice entity to a GORM RegisteredDeviceModel.
func fromDeviceDomain(data *entity.RegisteredDevice) *model.RegisteredDeviceModel {
	if data == nil {
		return nil
	}

	return &model.RegisteredDeviceModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Brand:             data.Brand,
		SerialNumber:      data.SerialNumber,
		RegistrationToken: data.RegistrationToken,
		FCMToken:          data.FCMToken,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
