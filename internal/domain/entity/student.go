package entity

import "time"

// StudentProfile represents a student record from the campus registry.
// UserID is the opaque key issued by the external user directory; TagValue is
// the token reported by the student's registered RFID tag.
type StudentProfile struct {
	UserID     string    `json:"user_id"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName"`
	LastName   string    `json:"lastName"`
	TUPTID     string    `json:"tuptId"`
	Course     string    `json:"course"`
	Section    string    `json:"section"`
	Email      string    `json:"email"`
	PhotoURL   string    `json:"photoUrl,omitempty"`
	TagValue   string    `json:"tagValue"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FullName joins the name parts for display.
func (p *StudentProfile) FullName() string {
	name := p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	if p.LastName != "" {
		name += " " + p.LastName
	}

	return name
}
