package audit

import "time"

const (
	ActionAlertGenerated     = "escalation_alert_generated"
	ActionAlertDismissed     = "escalation_alert_dismissed"
	ActionComplaintEscalated = "complaint_escalated"
	ActionComplaintSubmitted = "complaint_submitted"
)

const (
	ActorSystem = "system"
	ActorUser   = "user"
)

// Entry is one immutable audit record. Hash covers every other field except ID.
type Entry struct {
	ID          string         `json:"id"`
	ComplaintID string         `json:"complaint_id"`
	Timestamp   time.Time      `json:"timestamp"`
	Action      string         `json:"action"`
	PerformedBy string         `json:"performed_by"`
	Details     map[string]any `json:"details"`
	Hash        string         `json:"hash"`
}
