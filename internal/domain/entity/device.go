package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegisteredDevice represents a student's device enrolled for gatepass
// matching. RegistrationToken is the value the gate reader reports when the
// device is scanned; FCMToken, when present, lets the service push
// excessive-tap alerts to the device.
type RegisteredDevice struct {
	ID                uuid.UUID `json:"id"`
	UserID            string    `json:"user_id"`
	Brand             string    `json:"device_brand"`
	SerialNumber      string    `json:"device_serialNumber"`
	RegistrationToken string    `json:"deviceRegistration"`
	FCMToken          string    `json:"fcm_token,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
