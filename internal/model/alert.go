package model

import "time"

// Urgency is the coarse urgency shown on an escalation alert.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// UrgencyFromPriority maps priority to urgency, ignoring which rule fired.
func UrgencyFromPriority(p Priority) Urgency {
	switch p {
	case PriorityCritical:
		return UrgencyCritical
	case PriorityHigh:
		return UrgencyHigh
	case PriorityMedium:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// EscalationAlert is a suggestion derived by one monitoring cycle.
type EscalationAlert struct {
	ComplaintID      string    `json:"complaint_id"`
	CurrentLevel     int       `json:"current_level"`
	SuggestedLevel   int       `json:"suggested_level"`
	Reason           string    `json:"reason"`
	Urgency          Urgency   `json:"urgency"`
	TimeElapsedHours float64   `json:"time_elapsed_hours"`
	RuleID           string    `json:"rule_id"`
	NotifyRoles      []string  `json:"notify_roles,omitempty"`
	DetectedAt       time.Time `json:"detected_at"`
}
