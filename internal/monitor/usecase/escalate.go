package usecase

import (
	"context"
	"errors"
	"fmt"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/complaint"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
	"escalation-srv/internal/notification"
)

const manualReason = "Manual escalation"

func (uc *implUseCase) Escalate(ctx context.Context, ip monitor.EscalateInput) (monitor.EscalateOutput, error) {
	if ip.ComplaintID == "" {
		return monitor.EscalateOutput{}, fmt.Errorf("%w: complaint_id", monitor.ErrFieldRequired)
	}
	if ip.TriggeredBy == "" {
		ip.TriggeredBy = model.TriggeredByManual
	}
	if !ip.TriggeredBy.IsValid() {
		return monitor.EscalateOutput{}, monitor.ErrInvalidTrigger
	}

	// Overlapping calls for one complaint resolve to a single winner even
	// when no caller pins FromLevel.
	if _, busy := uc.inflight.LoadOrStore(ip.ComplaintID, struct{}{}); busy {
		current, err := uc.complaints.Detail(ctx, ip.ComplaintID)
		if err != nil {
			return monitor.EscalateOutput{}, err
		}
		uc.recordConflict()
		return monitor.EscalateOutput{Committed: false, Complaint: current}, nil
	}
	defer uc.inflight.Delete(ip.ComplaintID)

	alert, hasAlert := uc.heldAlert(ip.ComplaintID)
	current, err := uc.complaints.Detail(ctx, ip.ComplaintID)
	if err != nil {
		return monitor.EscalateOutput{}, err
	}

	from := current.EscalationLevel
	switch {
	case ip.FromLevel != nil:
		from = *ip.FromLevel
	case hasAlert:
		from = alert.CurrentLevel
	}
	if ip.NewLevel == 0 && hasAlert {
		ip.NewLevel = alert.SuggestedLevel
	}
	if ip.NewLevel <= 0 {
		return monitor.EscalateOutput{}, monitor.ErrInvalidLevel
	}
	if ip.Reason == "" {
		ip.Reason = manualReason
		if hasAlert {
			ip.Reason = alert.Reason
		}
	}
	if ip.Actor == "" {
		ip.Actor = audit.ActorUser
		if ip.TriggeredBy == model.TriggeredBySystem {
			ip.Actor = audit.ActorSystem
		}
	}

	actions := uc.ruleActions(alert, hasAlert)
	status := actions.UpdateStatus
	if status == "" {
		status = model.StatusEscalated
	}

	group, groupErr := uc.directory.Lookup(ip.NewLevel)
	if groupErr != nil {
		uc.logger.Warnf(ctx, "internal.monitor.usecase.Escalate.Lookup: %v", groupErr)
	}

	var assignee *model.StakeholderMember
	var notified []string
	if groupErr == nil {
		if actions.AutoAssign || ip.TriggeredBy == model.TriggeredByManual {
			if m, err := uc.engine.SelectAssignee(group); err == nil {
				assignee = &m
			}
		}
		for _, m := range group.ActiveMembers() {
			notified = append(notified, m.ID)
		}
	}

	commit := complaint.CommitInput{
		ComplaintID:   ip.ComplaintID,
		FromLevel:     from,
		ToLevel:       ip.NewLevel,
		Reason:        ip.Reason,
		TriggeredBy:   ip.TriggeredBy,
		Status:        status,
		NotifiedUsers: notified,
	}
	if assignee != nil {
		commit.AssignedTo = assignee.ID
	}

	out, err := uc.complaints.Commit(ctx, commit)
	if err != nil {
		if errors.Is(err, complaint.ErrAlreadyEscalated) {
			uc.recordConflict()
			return monitor.EscalateOutput{Committed: false, Complaint: out.Complaint}, nil
		}
		if errors.Is(err, complaint.ErrInvalidLevel) {
			return monitor.EscalateOutput{}, monitor.ErrInvalidLevel
		}
		uc.logger.Errorf(ctx, "internal.monitor.usecase.Escalate.Commit: %v", err)
		return monitor.EscalateOutput{}, err
	}

	uc.mu.Lock()
	uc.removeAlertLocked(ip.ComplaintID)
	uc.stats.Escalations++
	uc.mu.Unlock()
	uc.metrics.escalations.WithLabelValues(string(ip.TriggeredBy)).Inc()
	uc.metrics.alerts.Set(float64(len(uc.Alerts(ctx))))

	details := map[string]any{
		"from_level":   from,
		"new_level":    ip.NewLevel,
		"reason":       ip.Reason,
		"triggered_by": string(ip.TriggeredBy),
	}
	if assignee != nil {
		details["assigned_to"] = assignee.ID
	}
	uc.audit.Record(ctx, ip.ComplaintID, audit.ActionComplaintEscalated, ip.Actor, details)

	if current.Status != out.Complaint.Status {
		uc.notifier.NotifyStatusUpdate(ctx, ip.ComplaintID, current.Status, out.Complaint.Status)
	}

	result := monitor.EscalateOutput{
		Committed:  true,
		Complaint:  out.Complaint,
		History:    &out.History,
		AssignedTo: assignee,
	}
	if groupErr != nil {
		result.Report = &notification.Report{ComplaintID: ip.ComplaintID, Level: ip.NewLevel}
		return result, nil
	}

	dispatch := notification.DispatchInput{
		Group:       group,
		Complaint:   out.Complaint,
		FromLevel:   from,
		ToLevel:     ip.NewLevel,
		Reason:      ip.Reason,
		NotifyRoles: actions.NotifyRoles,
	}
	if ip.WaitNotify {
		report := uc.notifier.Dispatch(ctx, dispatch)
		result.Report = &report
		return result, nil
	}

	bgCtx := context.WithoutCancel(ctx)
	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()
		uc.notifier.Dispatch(bgCtx, dispatch)
	}()

	return result, nil
}

func (uc *implUseCase) recordConflict() {
	uc.mu.Lock()
	uc.stats.Conflicts++
	uc.mu.Unlock()
	uc.metrics.conflicts.Inc()
}

// ruleActions returns the actions of the rule behind a held alert.
func (uc *implUseCase) ruleActions(alert model.EscalationAlert, hasAlert bool) model.RuleActions {
	if !hasAlert || alert.RuleID == "" || uc.rules == nil {
		return model.RuleActions{}
	}
	r, err := uc.rules.Get(alert.RuleID)
	if err != nil {
		return model.RuleActions{NotifyRoles: alert.NotifyRoles}
	}
	return r.Actions
}

func (uc *implUseCase) heldAlert(complaintID string) (model.EscalationAlert, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, a := range uc.alerts {
		if a.ComplaintID == complaintID {
			return a, true
		}
	}
	return model.EscalationAlert{}, false
}

func (uc *implUseCase) removeAlertLocked(complaintID string) bool {
	for i, a := range uc.alerts {
		if a.ComplaintID == complaintID {
			uc.alerts = append(uc.alerts[:i:i], uc.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func (uc *implUseCase) Dismiss(ctx context.Context, complaintID string) error {
	uc.mu.Lock()
	if !uc.removeAlertLocked(complaintID) {
		uc.mu.Unlock()
		return monitor.ErrAlertNotFound
	}
	if uc.cfg.DismissCooldown > 0 {
		uc.dismissed[complaintID] = uc.clock().Add(uc.cfg.DismissCooldown)
	}
	uc.stats.Dismissals++
	remaining := len(uc.alerts)
	uc.mu.Unlock()

	uc.metrics.dismissals.Inc()
	uc.metrics.alerts.Set(float64(remaining))
	uc.audit.Record(ctx, complaintID, audit.ActionAlertDismissed, audit.ActorUser, map[string]any{
		"cooldown": uc.cfg.DismissCooldown.String(),
	})
	return nil
}
