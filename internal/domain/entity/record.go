package entity

import (
	"time"

	"github.com/google/uuid"
)

// TapStatus values recorded for venues that toggle between entry and exit.
const (
	TapStatusIn  = "IN"
	TapStatusOut = "OUT"
)

// TapRecord is one confirmed tap persisted to a venue's history store. The
// student fields are copied from the decision snapshot so the row stays
// accurate even after the profile changes.
type TapRecord struct {
	ID                 uuid.UUID `json:"id"`
	UserID             string    `json:"user_id"`
	Venue              Venue     `json:"venue"`
	FirstName          string    `json:"firstName"`
	MiddleName         string    `json:"middleName"`
	LastName           string    `json:"lastName"`
	TUPTID             string    `json:"tuptId"`
	Course             string    `json:"course"`
	Section            string    `json:"section"`
	Email              string    `json:"email"`
	DeviceBrand        string    `json:"deviceName,omitempty"`
	DeviceSerialNumber string    `json:"serialNumber,omitempty"`
	TapStatus          string    `json:"tapStatus,omitempty"`
	TaggedAt           time.Time `json:"taggedAt"`
}
