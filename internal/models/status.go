package models

import "strings"

// StatusLevel is the normalized attendance/role label of a stakeholder.
// Its value is the display label shown in legends, tables and filters.
type StatusLevel string

// Status levels in display order. StatusStakeholder is the fallback.
const (
	StatusKeynoteSpeaker      StatusLevel = "Keynote speaker"
	StatusGeneralParticipant  StatusLevel = "General Participant"
	StatusDeclined            StatusLevel = "Declined"
	StatusOrganisingCommittee StatusLevel = "Organising Committee"
	StatusSessionPresentation StatusLevel = "Session presentation"
	StatusPanelDiscussion     StatusLevel = "Panel discussion"
	StatusSponsor             StatusLevel = "Sponsor"
	StatusInvitedToAttend     StatusLevel = "Invited to attend Symposium"
	StatusStakeholder         StatusLevel = "Stakeholder"
)

// StatusLevels lists every status in display order.
var StatusLevels = []StatusLevel{
	StatusKeynoteSpeaker,
	StatusGeneralParticipant,
	StatusDeclined,
	StatusOrganisingCommittee,
	StatusSessionPresentation,
	StatusPanelDiscussion,
	StatusSponsor,
	StatusInvitedToAttend,
	StatusStakeholder,
}

var statusColors = map[StatusLevel]string{
	StatusKeynoteSpeaker:      "#2ecc71",
	StatusGeneralParticipant:  "#ffffb3",
	StatusDeclined:            "#e74c3c",
	StatusOrganisingCommittee: "#3498db",
	StatusSessionPresentation: "#f1c40f",
	StatusPanelDiscussion:     "#9b59b6",
	StatusSponsor:             "#d4ac0d",
	StatusInvitedToAttend:     "#f39c12",
	StatusStakeholder:         "#808080",
}

// Color returns the fixed marker/legend color for the status.
func (s StatusLevel) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusStakeholder]
}

// ParseStatusLevel maps a display label to its status level.
func ParseStatusLevel(label string) (StatusLevel, bool) {
	for _, s := range StatusLevels {
		if string(s) == label {
			return s, true
		}
	}
	return "", false
}

// NormalizeStatus classifies free-text status input into a StatusLevel.
// Matching is case-insensitive substring matching evaluated in a fixed
// priority order; the first matching rule wins. It never fails: anything
// unrecognized is a plain Stakeholder.
func NormalizeStatus(raw string) StatusLevel {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "keynote"):
		return StatusKeynoteSpeaker
	case strings.Contains(s, "general") && strings.Contains(s, "participant"):
		return StatusGeneralParticipant
	case strings.Contains(s, "declined"):
		return StatusDeclined
	case strings.Contains(s, "organising"):
		return StatusOrganisingCommittee
	case strings.Contains(s, "session") || strings.Contains(s, "oral"):
		return StatusSessionPresentation
	case strings.Contains(s, "panel"):
		return StatusPanelDiscussion
	case strings.Contains(s, "sponsor"):
		return StatusSponsor
	}
	switch strings.TrimSpace(s) {
	case "tbc", "to be confirmed":
		return StatusInvitedToAttend
	}
	return StatusStakeholder
}
