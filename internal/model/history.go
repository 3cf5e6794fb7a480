package model

import "time"

// TriggeredBy tells who caused an escalation.
type TriggeredBy string

const (
	TriggeredBySystem TriggeredBy = "system"
	TriggeredByManual TriggeredBy = "manual"
)

// IsValid checks if the trigger is a known value.
func (t TriggeredBy) IsValid() bool {
	return t == TriggeredBySystem || t == TriggeredByManual
}

// EscalationHistory is written once per committed escalation.
type EscalationHistory struct {
	Timestamp     time.Time   `json:"timestamp"`
	FromLevel     int         `json:"from_level"`
	ToLevel       int         `json:"to_level"`
	Reason        string      `json:"reason"`
	TriggeredBy   TriggeredBy `json:"triggered_by"`
	NotifiedUsers []string    `json:"notified_users"`
}
