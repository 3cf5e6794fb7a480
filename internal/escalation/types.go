package escalation

import "escalation-srv/internal/model"

// Decision is the outcome of evaluating one complaint against the rule set.
type Decision struct {
	ShouldEscalate bool     `json:"should_escalate"`
	NewLevel       int      `json:"new_level,omitempty"`
	Reason         string   `json:"reason,omitempty"`
	NotifyRoles    []string `json:"notify_roles,omitempty"`
	RuleID         string   `json:"rule_id,omitempty"`
	// HoursElapsed is the raw age of the complaint at evaluation time.
	HoursElapsed float64 `json:"hours_elapsed"`
}

// RouteOutput is a forward-looking routing preview for a complaint. It does
// not commit anything.
type RouteOutput struct {
	AssignedTo               *model.StakeholderMember `json:"assigned_to"`
	EscalationPath           []int                    `json:"escalation_path"`
	EstimatedResolutionHours int                      `json:"estimated_resolution_hours"`
	RecommendedActions       []string                 `json:"recommended_actions"`
}

// AssigneeStrategy selects how SelectAssignee picks among active members.
type AssigneeStrategy string

const (
	AssigneeStrategyRandom     AssigneeStrategy = "random"
	AssigneeStrategyRoundRobin AssigneeStrategy = "round_robin"
)
