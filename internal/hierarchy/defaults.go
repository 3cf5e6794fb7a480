package hierarchy

import "escalation-srv/internal/model"

var weekdays = []int{1, 2, 3, 4, 5}

// Defaults returns the out-of-the-box four level hierarchy.
func Defaults() []model.StakeholderGroup {
	return []model.StakeholderGroup{
		{
			ID:    "frontline",
			Name:  "Frontline Support",
			Level: 0,
			Members: []model.StakeholderMember{
				{ID: "agent1", Name: "John Smith", Email: "john.smith@company.com", Phone: "+1234567890", Role: "Support Agent", IsActive: true},
				{ID: "agent2", Name: "Jane Doe", Email: "jane.doe@company.com", Phone: "+1234567891", Role: "Support Agent", IsActive: true},
				{ID: "agent3", Name: "Mike Johnson", Email: "mike.johnson@company.com", Phone: "+1234567892", Role: "Senior Agent", IsActive: true},
			},
			NotificationPreferences:  model.NotificationPreferences{Email: true, Dashboard: true},
			EscalationThresholdHours: 4,
			BusinessHours:            model.BusinessHours{Start: "08:00", End: "18:00", Timezone: "UTC", Workdays: weekdays},
		},
		{
			ID:    "supervisors",
			Name:  "Team Supervisors",
			Level: 1,
			Members: []model.StakeholderMember{
				{ID: "sup1", Name: "Sarah Wilson", Email: "sarah.wilson@company.com", Phone: "+1234567893", Role: "Team Supervisor", IsActive: true},
				{ID: "sup2", Name: "David Brown", Email: "david.brown@company.com", Phone: "+1234567894", Role: "Team Lead", IsActive: true},
			},
			NotificationPreferences:  model.NotificationPreferences{Email: true, SMS: true, Dashboard: true},
			EscalationThresholdHours: 8,
			BusinessHours:            model.BusinessHours{Start: "07:00", End: "19:00", Timezone: "UTC", Workdays: weekdays},
		},
		{
			ID:    "managers",
			Name:  "Department Managers",
			Level: 2,
			Members: []model.StakeholderMember{
				{ID: "mgr1", Name: "Lisa Anderson", Email: "lisa.anderson@company.com", Phone: "+1234567895", Role: "Customer Service Manager", IsActive: true},
				{ID: "mgr2", Name: "Robert Taylor", Email: "robert.taylor@company.com", Phone: "+1234567896", Role: "Technical Manager", IsActive: true},
			},
			NotificationPreferences:  model.NotificationPreferences{Email: true, SMS: true, Dashboard: true, SlackChannel: "#management"},
			EscalationThresholdHours: 24,
			BusinessHours:            model.BusinessHours{Start: "06:00", End: "20:00", Timezone: "UTC", Workdays: []int{1, 2, 3, 4, 5, 6}},
		},
		{
			ID:    "executives",
			Name:  "Executive Leadership",
			Level: 3,
			Members: []model.StakeholderMember{
				{ID: "ceo", Name: "Jennifer Martinez", Email: "ceo@company.com", Phone: "+1234567897", Role: "CEO", IsActive: true},
				{ID: "cto", Name: "Michael Davis", Email: "cto@company.com", Phone: "+1234567898", Role: "CTO", IsActive: true},
			},
			NotificationPreferences:  model.NotificationPreferences{Email: true, SMS: true, Dashboard: true, SlackChannel: "#executive"},
			EscalationThresholdHours: 72,
			BusinessHours:            model.BusinessHours{Start: "00:00", End: "23:59", Timezone: "UTC", Workdays: []int{1, 2, 3, 4, 5, 6, 7}},
		},
	}
}
