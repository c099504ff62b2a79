package entity

import "time"

// TagRead is a raw scan notification from a venue reader feed. It is
// transient and consumed exactly once by the coordinator that receives it.
type TagRead struct {
	Venue    Venue  `json:"venue"`
	RawToken string `json:"tagData"`

	// ExcessiveTap is the server-computed repeat-tap flag. It is nil for
	// venues whose feed carries only the bare token.
	ExcessiveTap *bool `json:"excessiveTap,omitempty"`

	// TapStatus is an optional server-supplied IN/OUT status accompanying
	// the read on feeds that provide one.
	TapStatus string `json:"tapStatus,omitempty"`

	ReceivedAt time.Time `json:"receivedAt"`
}

// TapOutcome classifies the coordinator's decision for one TagRead.
type TapOutcome string

const (
	OutcomeMatched          TapOutcome = "matched"
	OutcomeRejectedNoMatch  TapOutcome = "rejected_no_match"
	OutcomeRejectedCooldown TapOutcome = "rejected_cooldown"
)

// TapSnapshot is an immutable copy of the display data taken at decision
// time. Later identity refreshes never alter a snapshot that has already
// been produced.
type TapSnapshot struct {
	SubjectID          string `json:"user_id"`
	FirstName          string `json:"firstName"`
	MiddleName         string `json:"middleName"`
	LastName           string `json:"lastName"`
	TUPTID             string `json:"tuptId"`
	Course             string `json:"course"`
	Section            string `json:"section"`
	Email              string `json:"email"`
	PhotoURL           string `json:"photoUrl,omitempty"`
	DeviceBrand        string `json:"device_brand,omitempty"`
	DeviceSerialNumber string `json:"device_serialNumber,omitempty"`
	Setting            string `json:"setting"`
	TapStatus          string `json:"tapStatus,omitempty"`
}

// TapDecision is the coordinator's output for one TagRead. Snapshot is set
// only when Outcome is OutcomeMatched.
type TapDecision struct {
	Outcome   TapOutcome   `json:"outcome"`
	Venue     Venue        `json:"venue"`
	MatchedAt time.Time    `json:"taggedAt"`
	Snapshot  *TapSnapshot `json:"snapshot,omitempty"`
}

// Matched reports whether the decision confirmed the tap.
func (d *TapDecision) Matched() bool {
	return d != nil && d.Outcome == OutcomeMatched
}
