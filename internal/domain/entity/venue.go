// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Venue identifies one of the tracked campus contexts. Each venue has its own
// reader feed and its own history store.
type Venue string

const (
	VenueAttendance Venue = "attendance"
	VenueLibrary    Venue = "library"
	VenueGym        Venue = "gym"
	VenueGatepass   Venue = "gatepass"
	VenueRegistrar  Venue = "registrar"
)

// Venues lists every known venue.
var Venues = []Venue{VenueAttendance, VenueLibrary, VenueGym, VenueGatepass, VenueRegistrar}

// ParseVenue converts a string into a Venue, case-insensitively.
func ParseVenue(s string) (Venue, error) {
	v := Venue(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Venues {
		if v == known {
			return known, nil
		}
	}

	return "", errors.Errorf("unknown venue: %s", s)
}

func (v Venue) String() string {
	return string(v)
}

// Label returns the display label shown on tap snapshots, e.g. "Gym".
func (v Venue) Label() string {
	if v == "" {
		return ""
	}

	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// DeviceGated reports whether taps at this venue are matched against the
// subject's registered device token instead of the RFID tag value.
func (v Venue) DeviceGated() bool {
	return v == VenueGatepass
}

// ServerFlagsExcess reports whether the venue's reader feed carries a
// server-computed excessive-tap flag. Where it does, that flag is
// authoritative; elsewhere the coordinator applies its local cooldown.
func (v Venue) ServerFlagsExcess() bool {
	return v == VenueLibrary
}

// TracksInOut reports whether consecutive taps at this venue toggle between
// an IN and an OUT status.
func (v Venue) TracksInOut() bool {
	switch v {
	case VenueLibrary, VenueGym, VenueGatepass:
		return true
	default:
		return false
	}
}

// SupportsLive reports whether the venue has a live reader feed. Registrar
// is report-only.
func (v Venue) SupportsLive() bool {
	return v != VenueRegistrar
}
