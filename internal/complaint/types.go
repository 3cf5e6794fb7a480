package complaint

import (
	"time"

	"escalation-srv/internal/model"
)

// SubmitInput creates a new complaint at level 0 with status new.
type SubmitInput struct {
	ID          string
	Title       string
	Description string
	Category    string
	Priority    model.Priority
	// CreatedAt defaults to now. Set it to import complaints filed elsewhere.
	CreatedAt time.Time
}

type ListInput struct {
	Statuses   []model.Status
	Priorities []model.Priority
	Categories []string
}

// CommitInput moves a complaint from FromLevel to ToLevel.
type CommitInput struct {
	ComplaintID string
	FromLevel   int
	ToLevel     int
	Reason      string
	TriggeredBy model.TriggeredBy
	// Status defaults to escalated.
	Status        model.Status
	AssignedTo    string
	NotifiedUsers []string
}

type CommitOutput struct {
	Complaint model.Complaint
	History   model.EscalationHistory
}
