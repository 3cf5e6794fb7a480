package monitor

import (
	"time"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
)

type EscalateInput struct {
	ComplaintID string
	// NewLevel defaults to the held alert's suggested level.
	NewLevel int
	// Reason defaults to the held alert's reason.
	Reason      string
	TriggeredBy model.TriggeredBy
	// FromLevel pins the level the caller saw. When nil the held alert's
	// current level is used, then the stored level.
	FromLevel *int
	Actor     string
	// WaitNotify dispatches notifications before returning.
	WaitNotify bool
}

type EscalateOutput struct {
	// Committed is false when another commit won the race.
	Committed  bool                     `json:"committed"`
	Complaint  model.Complaint          `json:"complaint"`
	History    *model.EscalationHistory `json:"history,omitempty"`
	AssignedTo *model.StakeholderMember `json:"assigned_to,omitempty"`
	Report     *notification.Report     `json:"report,omitempty"`
}

type CycleResult struct {
	Evaluated  int           `json:"evaluated"`
	Alerts     int           `json:"alerts"`
	Errors     int           `json:"errors"`
	Suppressed int           `json:"suppressed"`
	Duration   time.Duration `json:"duration"`
	// Aborted is set when the cycle was cancelled before its alerts were kept.
	Aborted bool `json:"aborted,omitempty"`
}

type Stats struct {
	Monitoring  bool          `json:"monitoring"`
	Interval    time.Duration `json:"interval"`
	Cycles      int64         `json:"cycles"`
	LastCycleAt time.Time     `json:"last_cycle_at,omitempty"`
	LastCycle   CycleResult   `json:"last_cycle"`
	Alerts      int           `json:"alerts"`
	Escalations int64         `json:"escalations"`
	Conflicts   int64         `json:"conflicts"`
	Dismissals  int64         `json:"dismissals"`
}
