package rule

import (
	"fmt"

	"escalation-srv/internal/model"
)

// Validate checks a single rule for authoring mistakes.
func Validate(r model.EscalationRule) error {
	if r.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRule)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidRule, r.ID)
	}
	if r.Actions.EscalateToLevel <= 0 {
		return fmt.Errorf("%w: %s: escalate_to_level must be positive", ErrInvalidRule, r.ID)
	}
	if r.Conditions.TimeThresholdHours < 0 {
		return fmt.Errorf("%w: %s: time_threshold_hours must not be negative", ErrInvalidRule, r.ID)
	}
	if len(r.Conditions.Priority) == 0 || len(r.Conditions.Category) == 0 || len(r.Conditions.StatusRequired) == 0 {
		return fmt.Errorf("%w: %s: priority, category and status_required must not be empty", ErrInvalidRule, r.ID)
	}
	for _, p := range r.Conditions.Priority {
		if !p.IsValid() {
			return fmt.Errorf("%w: %s: unknown priority %q", ErrInvalidRule, r.ID, p)
		}
	}
	for _, c := range r.Conditions.Category {
		if c == "" {
			return fmt.Errorf("%w: %s: blank category", ErrInvalidRule, r.ID)
		}
	}
	for _, st := range r.Conditions.StatusRequired {
		if !st.IsValid() {
			return fmt.Errorf("%w: %s: unknown status %q", ErrInvalidRule, r.ID, st)
		}
	}
	if r.Actions.UpdateStatus != "" && !r.Actions.UpdateStatus.IsValid() {
		return fmt.Errorf("%w: %s: unknown update_status %q", ErrInvalidRule, r.ID, r.Actions.UpdateStatus)
	}
	return nil
}
