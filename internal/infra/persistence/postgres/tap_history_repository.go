package postgres

import (
	"context"
	"time"

	"macts/internal/domain/entity"
	domainerrors "macts/internal/domain/errors"
	"macts/internal/domain/repository"
	"macts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tapHistoryRepository implements the repository.TapHistoryRepository interface.
type tapHistoryRepository struct {
	db *gorm.DB
}

// NewTapHistoryRepository is the constructor for tapHistoryRepository.
func NewTapHistoryRepository(db *gorm.DB) repository.TapHistoryRepository {
	return &tapHistoryRepository{
		db: db,
	}
}

// Append persists one confirmed tap. The table is append-only.
func (repo *tapHistoryRepository) Append(ctx context.Context, record *entity.TapRecord) error {
	recordM := fromTapRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append tap record")
	}

	record.ID = recordM.ID

	return nil
}

// ListByUser retrieves a subject's confirmed taps for a venue, most recent
// first. A limit of zero means no limit.
func (repo *tapHistoryRepository) ListByUser(ctx context.Context, userID string, venue entity.Venue, limit int) ([]*entity.TapRecord, error) {
	var recordModels []*model.TapRecordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND venue = ?", userID, venue.String()).
		Order("tagged_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tap history")
	}

	records := make([]*entity.TapRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toTapRecordDomain(recordM))
	}

	return records, nil
}

// CountForDay counts a subject's confirmed taps at a venue on the calendar
// day containing the given instant, in the instant's location.
func (repo *tapHistoryRepository) CountForDay(ctx context.Context, userID string, venue entity.Venue, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TapRecordModel{}).
		Where("user_id = ? AND venue = ? AND tagged_at >= ? AND tagged_at < ?",
			userID, venue.String(), start, end).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count taps for day")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTapRecordDomain converts a GORM TapRecordModel to a domain TapRecord entity.
func toTapRecordDomain(data *model.TapRecordModel) *entity.TapRecord {
	if data == nil {
		return nil
	}

	return &entity.TapRecord{
		ID:                 data.ID,
		UserID:             data.UserID,
		Venue:              entity.Venue(data.Venue),
		FirstName:          data.FirstName,
		MiddleName:         data.MiddleName,
		LastName:           data.LastName,
		TUPTID:             data.TUPTID,
		Course:             data.Course,
		Section:            data.Section,
		Email:              data.Email,
		DeviceBrand:        data.DeviceBrand,
		DeviceSerialNumber: data.DeviceSerialNumber,
		TapStatus:          data.TapStatus,
		TaggedAt:           data.TaggedAt,
	}
}

// fromTapRecordDomain converts a domain TapRecord entity to a GORM TapRecordModel.
func fromTapRecordDomain(data *entity.TapRecord) *model.TapRecordModel {
	if data == nil {
		return nil
	}

	return &model.TapRecordModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Venue:              data.Venue.String(),
		FirstName:          data.FirstName,
		MiddleName:         data.MiddleName,
		LastName:           data.LastName,
		TUPTID:             data.TUPTID,
		Course:             data.Course,
		Section:            data.Section,
		Email:              data.Email,
		DeviceBrand:        data.DeviceBrand,
		DeviceSerialNumber: data.DeviceSerialNumber,
		TapStatus:          data.TapStatus,
		TaggedAt:           data.TaggedAt,
	}
}
