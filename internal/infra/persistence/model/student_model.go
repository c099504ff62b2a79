package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentProfileModel is the GORM-specific struct for the 'student_info'
// table. It holds the registry record displayed on every tap confirmation.
type StudentProfileModel struct {
	UserID     string `gorm:"type:varchar(64);primary_key"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	MiddleName string `gorm:"type:varchar(100)"`
	LastName   string `gorm:"type:varchar(100);not null"`
	TUPTID     string `gorm:"column:tupt_id;type:varchar(32);not null;uniqueIndex"`
	Course     string `gorm:"type:varchar(100)"`
	Section    string `gorm:"type:varchar(32)"`
	Email      string `gorm:"type:varchar(255)"`
	PhotoURL   string `gorm:"type:text"`
	TagValue   string `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_info"
}
