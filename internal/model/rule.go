package model

// RuleConditions is the predicate half of an escalation rule.
type RuleConditions struct {
	Priority           []Priority `json:"priority" mapstructure:"priority" yaml:"priority"`
	Category           []string   `json:"category" mapstructure:"category" yaml:"category"`
	TimeThresholdHours float64    `json:"time_threshold_hours" mapstructure:"time_threshold_hours" yaml:"time_threshold_hours"`
	StatusRequired     []Status   `json:"status_required" mapstructure:"status_required" yaml:"status_required"`
	BusinessHoursOnly  bool       `json:"business_hours_only" mapstructure:"business_hours_only" yaml:"business_hours_only"`
	ExcludeWeekends    bool       `json:"exclude_weekends" mapstructure:"exclude_weekends" yaml:"exclude_weekends"`
}

// RuleActions is what happens when a rule fires.
type RuleActions struct {
	EscalateToLevel int      `json:"escalate_to_level" mapstructure:"escalate_to_level" yaml:"escalate_to_level"`
	NotifyRoles     []string `json:"notify_roles" mapstructure:"notify_roles" yaml:"notify_roles"`
	UpdateStatus    Status   `json:"update_status,omitempty" mapstructure:"update_status" yaml:"update_status"`
	RequireApproval bool     `json:"require_approval" mapstructure:"require_approval" yaml:"require_approval"`
	AutoAssign      bool     `json:"auto_assign" mapstructure:"auto_assign" yaml:"auto_assign"`
}

// EscalationRule is one authored escalation rule. Order within a rule set matters.
type EscalationRule struct {
	ID         string         `json:"id" mapstructure:"id" yaml:"id"`
	Name       string         `json:"name" mapstructure:"name" yaml:"name"`
	Conditions RuleConditions `json:"conditions" mapstructure:"conditions" yaml:"conditions"`
	Actions    RuleActions    `json:"actions" mapstructure:"actions" yaml:"actions"`
}

// HasPriority reports whether p is in the rule's priority set.
func (c RuleConditions) HasPriority(p Priority) bool {
	for _, v := range c.Priority {
		if v == p {
			return true
		}
	}
	return false
}

// HasCategory reports whether category is in the rule's category set.
func (c RuleConditions) HasCategory(category string) bool {
	for _, v := range c.Category {
		if v == category {
			return true
		}
	}
	return false
}

// HasStatus reports whether s is in the rule's required status set.
func (c RuleConditions) HasStatus(s Status) bool {
	for _, v := range c.StatusRequired {
		if v == s {
			return true
		}
	}
	return false
}

// Clone returns a copy with its own slices.
func (r EscalationRule) Clone() EscalationRule {
	out := r
	out.Conditions.Priority = append([]Priority(nil), r.Conditions.Priority...)
	out.Conditions.Category = append([]string(nil), r.Conditions.Category...)
	out.Conditions.StatusRequired = append([]Status(nil), r.Conditions.StatusRequired...)
	out.Actions.NotifyRoles = append([]string(nil), r.Actions.NotifyRoles...)
	return out
}
