package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisteredDeviceModel is the GORM-specific struct for the
// 'device_registration' table. One device per student; the registration
// token is what the gate reader emits.
type RegisteredDeviceModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Brand             string    `gorm:"column:device_brand;type:varchar(100);not null"`
	SerialNumber      string    `gorm:"column:device_serial_number;type:varchar(100);not null"`
	RegistrationToken string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FCMToken          string    `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RegisteredDeviceModel) TableName() string {
	return "device_registration"
}
