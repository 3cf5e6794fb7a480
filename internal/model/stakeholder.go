package model

// NotificationPreferences lists the channels a stakeholder group wants.
type NotificationPreferences struct {
	Email        bool   `json:"email" mapstructure:"email" yaml:"email"`
	SMS          bool   `json:"sms" mapstructure:"sms" yaml:"sms"`
	Dashboard    bool   `json:"dashboard" mapstructure:"dashboard" yaml:"dashboard"`
	Webhook      string `json:"webhook,omitempty" mapstructure:"webhook" yaml:"webhook"`
	SlackChannel string `json:"slack_channel,omitempty" mapstructure:"slack_channel" yaml:"slack_channel"`
	TeamsChannel string `json:"teams_channel,omitempty" mapstructure:"teams_channel" yaml:"teams_channel"`
}

// BusinessHours describes when a group is staffed. Workdays use 1=Monday..7=Sunday.
type BusinessHours struct {
	Start    string `json:"start" mapstructure:"start" yaml:"start"`
	End      string `json:"end" mapstructure:"end" yaml:"end"`
	Timezone string `json:"timezone" mapstructure:"timezone" yaml:"timezone"`
	Workdays []int  `json:"workdays" mapstructure:"workdays" yaml:"workdays"`
}

// StakeholderMember is a person who can be assigned or notified.
type StakeholderMember struct {
	ID        string   `json:"id" mapstructure:"id" yaml:"id"`
	Name      string   `json:"name" mapstructure:"name" yaml:"name"`
	Email     string   `json:"email" mapstructure:"email" yaml:"email"`
	Phone     string   `json:"phone,omitempty" mapstructure:"phone" yaml:"phone"`
	Role      string   `json:"role" mapstructure:"role" yaml:"role"`
	IsActive  bool     `json:"is_active" mapstructure:"is_active" yaml:"is_active"`
	BackupFor []string `json:"backup_for,omitempty" mapstructure:"backup_for" yaml:"backup_for"`
}

// StakeholderGroup is the set of responders for one hierarchy level.
type StakeholderGroup struct {
	ID                       string                  `json:"id" mapstructure:"id" yaml:"id"`
	Name                     string                  `json:"name" mapstructure:"name" yaml:"name"`
	Level                    int                     `json:"level" mapstructure:"level" yaml:"level"`
	Members                  []StakeholderMember     `json:"members" mapstructure:"members" yaml:"members"`
	NotificationPreferences  NotificationPreferences `json:"notification_preferences" mapstructure:"notification_preferences" yaml:"notification_preferences"`
	EscalationThresholdHours float64                 `json:"escalation_threshold_hours" mapstructure:"escalation_threshold_hours" yaml:"escalation_threshold_hours"`
	BusinessHours            BusinessHours           `json:"business_hours" mapstructure:"business_hours" yaml:"business_hours"`
}

// ActiveMembers returns the members eligible for assignment.
func (g StakeholderGroup) ActiveMembers() []StakeholderMember {
	var out []StakeholderMember
	for _, m := range g.Members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}
