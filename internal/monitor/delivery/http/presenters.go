package http

import (
	"time"

	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
)

type escalateReq struct {
	NewLevel    int    `json:"new_level"`
	Reason      string `json:"reason"`
	TriggeredBy string `json:"triggered_by"`
	// FromLevel pins the level the caller saw when deciding.
	FromLevel *int `json:"from_level"`
	Wait      bool `json:"wait"`
}

func (r escalateReq) toInput(complaintID, actor string) monitor.EscalateInput {
	return monitor.EscalateInput{
		ComplaintID: complaintID,
		NewLevel:    r.NewLevel,
		Reason:      r.Reason,
		TriggeredBy: model.TriggeredBy(r.TriggeredBy),
		FromLevel:   r.FromLevel,
		Actor:       actor,
		WaitNotify:  r.Wait,
	}
}

type alertsResp struct {
	Alerts []model.EscalationAlert `json:"alerts"`
	Total  int                     `json:"total"`
}

type statusResp struct {
	Monitoring  bool                `json:"monitoring"`
	Interval    string              `json:"interval"`
	Cycles      int64               `json:"cycles"`
	LastCycleAt *time.Time          `json:"last_cycle_at,omitempty"`
	LastCycle   monitor.CycleResult `json:"last_cycle"`
	Alerts      int                 `json:"alerts"`
	Escalations int64               `json:"escalations"`
	Conflicts   int64               `json:"conflicts"`
	Dismissals  int64               `json:"dismissals"`
}

func newStatusResp(s monitor.Stats) statusResp {
	resp := statusResp{
		Monitoring:  s.Monitoring,
		Interval:    s.Interval.String(),
		Cycles:      s.Cycles,
		LastCycle:   s.LastCycle,
		Alerts:      s.Alerts,
		Escalations: s.Escalations,
		Conflicts:   s.Conflicts,
		Dismissals:  s.Dismissals,
	}
	if !s.LastCycleAt.IsZero() {
		t := s.LastCycleAt
		resp.LastCycleAt = &t
	}
	return resp
}
