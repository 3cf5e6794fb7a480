package usecase

import (
	"fmt"
	"strings"
	"time"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/model"
)

// Evaluate runs the rule set in order and returns the first match.
func (uc *implUseCase) Evaluate(c model.Complaint, now time.Time) (escalation.Decision, error) {
	if err := validateComplaint(c); err != nil {
		return escalation.Decision{}, err
	}

	hoursElapsed := now.Sub(c.CreatedAt).Hours()
	for _, r := range uc.rules.All() {
		if !uc.matches(c, r, hoursElapsed) {
			continue
		}
		return escalation.Decision{
			ShouldEscalate: true,
			NewLevel:       r.Actions.EscalateToLevel,
			Reason:         fmt.Sprintf("%s - %.1f hours elapsed", r.Name, hoursElapsed),
			NotifyRoles:    r.Actions.NotifyRoles,
			RuleID:         r.ID,
			HoursElapsed:   hoursElapsed,
		}, nil
	}

	return escalation.Decision{ShouldEscalate: false, HoursElapsed: hoursElapsed}, nil
}

func (uc *implUseCase) matches(c model.Complaint, r model.EscalationRule, hoursElapsed float64) bool {
	cond := r.Conditions
	if !cond.HasPriority(c.Priority) {
		return false
	}
	if !cond.HasCategory(c.Category) {
		return false
	}
	if !cond.HasStatus(c.Status) {
		return false
	}
	// Escalation is monotonic: a rule can only move a complaint up.
	if c.EscalationLevel >= r.Actions.EscalateToLevel {
		return false
	}
	if hoursElapsed < cond.TimeThresholdHours {
		return false
	}
	return effectiveHours(c.CreatedAt, cond, hoursElapsed, uc.location) >= cond.TimeThresholdHours
}

func validateComplaint(c model.Complaint) error {
	switch {
	case c.ID == "":
		return &escalation.EvaluationError{Field: "id", Reason: "is required"}
	case c.CreatedAt.IsZero():
		return &escalation.EvaluationError{ComplaintID: c.ID, Field: "created_at", Reason: "is required"}
	case strings.TrimSpace(c.Category) == "":
		return &escalation.EvaluationError{ComplaintID: c.ID, Field: "category", Reason: "is required"}
	case !c.Priority.IsValid():
		return &escalation.EvaluationError{ComplaintID: c.ID, Field: "priority", Reason: fmt.Sprintf("unknown value %q", c.Priority)}
	case !c.Status.IsValid():
		return &escalation.EvaluationError{ComplaintID: c.ID, Field: "status", Reason: fmt.Sprintf("unknown value %q", c.Status)}
	case c.EscalationLevel < 0:
		return &escalation.EvaluationError{ComplaintID: c.ID, Field: "escalation_level", Reason: "must not be negative"}
	}
	return nil
}
