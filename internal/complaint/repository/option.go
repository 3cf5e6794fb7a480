package repository

import "escalation-srv/internal/model"

// Filter narrows List. Empty slices match everything.
type Filter struct {
	IDs        []string
	Statuses   []model.Status
	Priorities []model.Priority
	Categories []string
}

type CreateOptions struct {
	Complaint model.Complaint
}

type ListOptions struct {
	Filter Filter
}

// EscalateOptions is applied only when the stored level still equals
// ExpectedLevel.
type EscalateOptions struct {
	ID            string
	ExpectedLevel int
	NewLevel      int
	Status        model.Status
	AssignedTo    string
	History       model.EscalationHistory
}
