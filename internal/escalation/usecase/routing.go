package usecase

import (
	"context"
	"errors"
	"math"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
)

const defaultResolutionHours = 24

var (
	baseResolutionHours = map[model.Priority]float64{
		model.PriorityCritical: 2,
		model.PriorityHigh:     8,
		model.PriorityMedium:   24,
		model.PriorityLow:      72,
	}
	levelMultiplier = map[int]float64{
		0: 1.5,
		1: 1.0,
		2: 0.8,
		3: 0.5,
	}
)

func (uc *implUseCase) ResolveGroup(level int) (model.StakeholderGroup, error) {
	return uc.directory.Lookup(level)
}

// SelectAssignee picks one active member of the group without weighting.
func (uc *implUseCase) SelectAssignee(group model.StakeholderGroup) (model.StakeholderMember, error) {
	active := group.ActiveMembers()
	if len(active) == 0 {
		return model.StakeholderMember{}, escalation.ErrNoEligibleAssignee
	}
	idx := uc.picker.Pick(len(active))
	if idx < 0 || idx >= len(active) {
		idx = 0
	}
	return active[idx], nil
}

// EscalationPath lists the levels above the current one that some rule
// applicable to this complaint could escalate to.
func (uc *implUseCase) EscalationPath(c model.Complaint) []int {
	rules := uc.rules.All()
	path := []int{}
	for level := c.EscalationLevel + 1; level <= uc.directory.MaxLevel(); level++ {
		for _, r := range rules {
			if r.Actions.EscalateToLevel == level &&
				r.Conditions.HasPriority(c.Priority) &&
				r.Conditions.HasCategory(c.Category) {
				path = append(path, level)
				break
			}
		}
	}
	return path
}

func (uc *implUseCase) EstimateResolutionTime(c model.Complaint, level int) int {
	base, ok := baseResolutionHours[c.Priority]
	if !ok {
		base = defaultResolutionHours
	}
	mult, ok := levelMultiplier[level]
	if !ok {
		mult = 1
	}
	return int(math.Round(base * mult))
}

func (uc *implUseCase) Route(ctx context.Context, c model.Complaint) escalation.RouteOutput {
	group, err := uc.directory.Lookup(c.EscalationLevel)
	if err != nil {
		if !errors.Is(err, hierarchy.ErrGroupNotFound) {
			uc.logger.Errorf(ctx, "internal.escalation.usecase.Route: %v", err)
		} else {
			uc.logger.Warnf(ctx, "internal.escalation.usecase.Route: no stakeholder group for level %d", c.EscalationLevel)
		}
		return escalation.RouteOutput{
			AssignedTo:               nil,
			EscalationPath:           []int{},
			EstimatedResolutionHours: defaultResolutionHours,
			RecommendedActions:       []string{"Create stakeholder group for this level"},
		}
	}

	out := escalation.RouteOutput{
		EscalationPath:           uc.EscalationPath(c),
		EstimatedResolutionHours: uc.EstimateResolutionTime(c, c.EscalationLevel),
		RecommendedActions:       recommendedActions(c),
	}
	if member, err := uc.SelectAssignee(group); err == nil {
		out.AssignedTo = &member
	}
	return out
}

func recommendedActions(c model.Complaint) []string {
	actions := []string{}

	switch c.Priority {
	case model.PriorityCritical:
		actions = append(actions,
			"Immediate response required within 1 hour",
			"Consider setting up war room for coordination",
			"Prepare executive briefing",
		)
	case model.PriorityHigh:
		actions = append(actions,
			"Respond within 4 hours",
			"Escalate if no progress within 8 hours",
		)
	}

	switch c.Category {
	case "technical":
		actions = append(actions,
			"Engage technical team for root cause analysis",
			"Check system monitoring for related issues",
		)
	case "billing":
		actions = append(actions,
			"Review account history and transactions",
			"Prepare refund/credit if applicable",
		)
	}

	if c.EscalationLevel >= 2 {
		actions = append(actions,
			"Consider process improvements to prevent recurrence",
			"Review escalation triggers for similar issues",
		)
	}

	return actions
}
