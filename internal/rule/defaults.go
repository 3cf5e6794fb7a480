package rule

import "escalation-srv/internal/model"

// Defaults returns the out-of-the-box rule set, in evaluation order.
func Defaults() []model.EscalationRule {
	return []model.EscalationRule{
		{
			ID:   "critical-immediate",
			Name: "Critical Issues - Immediate Escalation",
			Conditions: model.RuleConditions{
				Priority:           []model.Priority{model.PriorityCritical},
				Category:           []string{"technical", "service"},
				TimeThresholdHours: 1,
				StatusRequired:     []model.Status{model.StatusNew, model.StatusInProgress},
			},
			Actions: model.RuleActions{
				EscalateToLevel: 2,
				NotifyRoles:     []string{"supervisor", "manager"},
				UpdateStatus:    model.StatusEscalated,
				AutoAssign:      true,
			},
		},
		{
			ID:   "high-priority-escalation",
			Name: "High Priority - 4 Hour Rule",
			Conditions: model.RuleConditions{
				Priority:           []model.Priority{model.PriorityHigh},
				Category:           []string{"technical", "billing", "service"},
				TimeThresholdHours: 4,
				StatusRequired:     []model.Status{model.StatusNew, model.StatusInProgress},
				BusinessHoursOnly:  true,
			},
			Actions: model.RuleActions{
				EscalateToLevel: 1,
				NotifyRoles:     []string{"supervisor"},
				AutoAssign:      true,
			},
		},
		{
			ID:   "standard-escalation",
			Name: "Standard Issues - 24 Hour Rule",
			Conditions: model.RuleConditions{
				Priority:           []model.Priority{model.PriorityMedium},
				Category:           []string{"technical", "billing", "service", "product"},
				TimeThresholdHours: 24,
				StatusRequired:     []model.Status{model.StatusNew, model.StatusInProgress},
				BusinessHoursOnly:  true,
				ExcludeWeekends:    true,
			},
			Actions: model.RuleActions{
				EscalateToLevel: 1,
				NotifyRoles:     []string{"supervisor"},
			},
		},
		{
			ID:   "executive-escalation",
			Name: "Executive Escalation - Unresolved Critical",
			Conditions: model.RuleConditions{
				Priority:           []model.Priority{model.PriorityCritical},
				Category:           []string{"technical", "service"},
				TimeThresholdHours: 8,
				StatusRequired:     []model.Status{model.StatusEscalated},
			},
			Actions: model.RuleActions{
				EscalateToLevel: 3,
				NotifyRoles:     []string{"executive", "ceo"},
				UpdateStatus:    model.StatusEscalated,
				RequireApproval: true,
				AutoAssign:      true,
			},
		},
	}
}
