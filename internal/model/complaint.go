package model

import "time"

// Priority is the severity a complaint was filed with.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid checks if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	return string(p)
}

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusEscalated  Status = "escalated"
	StatusResolved   Status = "resolved"
)

// IsValid checks if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusEscalated, StatusResolved:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Complaint is a submitted complaint as seen by the escalation core.
// Only submission and an escalation commit change it.
type Complaint struct {
	ID              string              `json:"id" yaml:"id"`
	Title           string              `json:"title" yaml:"title"`
	Description     string              `json:"description,omitempty" yaml:"description"`
	Category        string              `json:"category" yaml:"category"`
	Priority        Priority            `json:"priority" yaml:"priority"`
	Status          Status              `json:"status" yaml:"status"`
	CreatedAt       time.Time           `json:"created_at" yaml:"created_at"`
	EscalationLevel int                 `json:"escalation_level" yaml:"escalation_level"`
	AssignedTo      string              `json:"assigned_to,omitempty" yaml:"assigned_to"`
	History         []EscalationHistory `json:"history,omitempty" yaml:"-"`
}

// Clone returns a deep copy so callers never share the history slice.
func (c Complaint) Clone() Complaint {
	out := c
	if c.History != nil {
		out.History = make([]EscalationHistory, len(c.History))
		copy(out.History, c.History)
	}
	return out
}
