package domain

import "time"

// DefaultSessionID keys state when no session is configured.
const DefaultSessionID = "default"

// Profile is the per-session study context the engine works from.
type Profile struct {
	SessionID    string
	Semester     int
	CareerPathID string
	UpdatedAt    time.Time
}

// NewProfile returns a first-semester profile with no career selected.
func NewProfile(sessionID string) *Profile {
	return &Profile{
		SessionID: CoalesceStr(sessionID, DefaultSessionID),
		Semester:  MinSemester,
	}
}

// HasCareer reports whether a career path has been chosen.
func (p *Profile) HasCareer() bool {
	return p.CareerPathID != ""
}
