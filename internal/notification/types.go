package notification

import (
	"time"

	"escalation-srv/internal/model"
)

type Type string

const (
	TypeEscalation   Type = "escalation"
	TypeNewComplaint Type = "new_complaint"
	TypeStatusUpdate Type = "status_update"
	TypeSystemAlert  Type = "system_alert"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// MaxStored is how many notifications the center keeps.
const MaxStored = 100

type Notification struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Priority  Priority       `json:"priority"`
	Timestamp time.Time      `json:"timestamp"`
	Read      bool           `json:"read"`
	Data      map[string]any `json:"data,omitempty"`
}

// Filter restricts what a subscriber receives. Empty fields match all.
type Filter struct {
	Types      []Type
	Priorities []Priority
}

type NotifyInput struct {
	Type     Type
	Title    string
	Message  string
	Priority Priority
	Data     map[string]any
}

type ListInput struct {
	Limit      int
	UnreadOnly bool
}

// Channel is a delivery route enabled by a group's notification preferences.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
	ChannelDashboard Channel = "dashboard"
	ChannelWebhook   Channel = "webhook"
	ChannelSlack     Channel = "slack"
	ChannelTeams     Channel = "teams"
)

type DispatchInput struct {
	Group       model.StakeholderGroup
	Complaint   model.Complaint
	FromLevel   int
	ToLevel     int
	Reason      string
	NotifyRoles []string
}

// Message is what a Sender delivers on one channel.
type Message struct {
	Channel     Channel
	Recipients  []string
	Subject     string
	Body        string
	Complaint   model.Complaint
	GroupName   string
	FromLevel   int
	ToLevel     int
	Reason      string
	NotifyRoles []string
	Timestamp   time.Time
}

type Delivery struct {
	Channel    Channel  `json:"channel"`
	Recipients []string `json:"recipients"`
	Skipped    bool     `json:"skipped,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Report is the outcome of one Dispatch call.
type Report struct {
	ComplaintID string     `json:"complaint_id"`
	Level       int        `json:"level"`
	Deliveries  []Delivery `json:"deliveries"`
}

func (r Report) Failed() []Delivery {
	var out []Delivery
	for _, d := range r.Deliveries {
		if d.Error != "" {
			out = append(out, d)
		}
	}
	return out
}

// DashboardEvent is published for the live dashboard stream.
type DashboardEvent struct {
	Type         Type         `json:"type"`
	ComplaintID  string       `json:"complaint_id"`
	Level        int          `json:"level"`
	Roles        []string     `json:"roles"`
	Notification Notification `json:"notification"`
}
