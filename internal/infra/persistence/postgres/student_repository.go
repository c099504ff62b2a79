// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// FindByUser retrieves the registry record for a user directory account.
func (repo *studentRepository) FindByUser(ctx context.Context, userID string) (*entity.StudentProfile, error) {
	var studentM model.StudentProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by user")
	}

	return toStudentDomain(&studentM), nil
}

// CreateProfile persists a new student registry record.
func (repo *studentRepository) CreateProfile(ctx context.Context, profile *entity.StudentProfile) error {
	studentM := fromStudentDomain(profile)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStudent
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student profile")
	}

	profile.CreatedAt = studentM.CreatedAt
	profile.UpdatedAt = studentM.UpdatedAt

	return nil
}

// UpdateProfile replaces the mutable fields of an existing record.
func (repo *studentRepository) UpdateProfile(ctx context.Context, profile *entity.StudentProfile) error {
	studentM := fromStudentDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.StudentProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(studentM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateStudent
		}

		return errors.Wrap(result.Error, "failed to update student profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentProfileModel to a domain StudentProfile entity.
func toStudentDomain(data *model.StudentProfileModel) *entity.StudentProfile {
	if data == nil {
		return nil
	}

	return &entity.StudentProfile{
		UserID:     data.UserID,
		FirstName:  data.FirstName,
		MiddleName: data.MiddleName,
		LastName:   data.LastName,
		TUPTID:     data.TUPTID,
		Course:     data.Course,
		Section:    data.Section,
		Email:      data.Email,
		PhotoURL:   data.PhotoURL,
		TagValue:   data.TagValue,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain StudentProfile entity to a GORM StudentProfileModel.
func fromStudentDomain(data *entity.StudentProfile) *model.StudentProfileModel {
	if data == nil {
		return nil
	}

	return &model.StudentProfileModel{
		UserID:     data.UserID,
		FirstName:  data.FirstName,
		MiddleName: data.MiddleName,
		LastName:   data.LastName,
		TUPTID:     data.TUPTID,
		Course:     data.Course,
		Section:    data.Section,
		Email:      data.Email,
		PhotoURL:   data.PhotoURL,
		TagValue:   data.TagValue,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
