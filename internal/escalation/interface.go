package escalation

import (
	"context"
	"time"

	"escalation-srv/internal/model"
)

// Evaluator decides whether a complaint should be escalated. Evaluate is a
// pure function of the complaint, the current rule set and now.
type Evaluator interface {
	Evaluate(complaint model.Complaint, now time.Time) (Decision, error)
}

// Router resolves stakeholders and previews escalation for a complaint.
type Router interface {
	ResolveGroup(level int) (model.StakeholderGroup, error)
	SelectAssignee(group model.StakeholderGroup) (model.StakeholderMember, error)
	EscalationPath(complaint model.Complaint) []int
	EstimateResolutionTime(complaint model.Complaint, level int) int
	Route(ctx context.Context, complaint model.Complaint) RouteOutput
}

// UseCase is the escalation engine: evaluation plus stakeholder routing.
type UseCase interface {
	Evaluator
	Router
}
