package model

import (
	"time"

	"github.com/google/uuid"
)

// TapRecordModel is the GORM-specific struct for the 'tap_history' table.
// Rows are append-only; confirmed taps are never updated or deleted.
type TapRecordModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             string    `gorm:"type:varchar(64);not null;index:idx_tap_history_user_venue,priority:1"`
	Venue              string    `gorm:"type:varchar(32);not null;index:idx_tap_history_user_venue,priority:2"`
	FirstName          string    `gorm:"type:varchar(100)"`
	MiddleName         string    `gorm:"type:varchar(100)"`
	LastName           string    `gorm:"type:varchar(100)"`
	TUPTID             string    `gorm:"column:tupt_id;type:varchar(32)"`
	Course             string    `gorm:"type:varchar(100)"`
	Section            string    `gorm:"type:varchar(32)"`
	Email              string    `gorm:"type:varchar(255)"`
	DeviceBrand        string    `gorm:"type:varchar(100)"`
	DeviceSerialNumber string    `gorm:"type:varchar(100)"`
	TapStatus          string    `gorm:"type:varchar(8)"`
	TaggedAt           time.Time `gorm:"not null;index"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (TapRecordModel) TableName() string {
	return "tap_history"
}
