package entity

// IdentityReference is the value a scanned token must equal to produce a
// match for one subject at one venue. For device-gated venues TagValue holds
// the device registration token and Device is populated; elsewhere it is the
// profile's RFID tag value.
type IdentityReference struct {
	SubjectID string
	TagValue  string
	Profile   StudentProfile
	Device    *RegisteredDevice
}

// Clone returns a deep copy. Coordinators snapshot from clones so that a
// subsequent reference reload cannot mutate an already-produced decision.
func (r *IdentityReference) Clone() *IdentityReference {
	if r == nil {
		return nil
	}

	clone := *r
	if r.Device != nil {
		device := *r.Device
		clone.Device = &device
	}

	return &clone
}
