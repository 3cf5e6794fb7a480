package usecase

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/complaint"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
)

func (uc *implUseCase) Refresh(ctx context.Context) (monitor.CycleResult, error) {
	complaints, err := uc.complaints.List(ctx, complaint.ListInput{})
	if err != nil {
		return monitor.CycleResult{}, err
	}
	return uc.RunCycle(ctx, complaints, uc.clock()), nil
}

func (uc *implUseCase) RunCycle(ctx context.Context, complaints []model.Complaint, now time.Time) monitor.CycleResult {
	uc.cycleMu.Lock()
	defer uc.cycleMu.Unlock()

	start := time.Now()
	candidates := make([]*model.EscalationAlert, len(complaints))
	var evalErrors atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.Workers)
	for i, c := range complaints {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := uc.engine.Evaluate(c, now)
			if err != nil {
				evalErrors.Add(1)
				uc.logger.Warnf(ctx, "internal.monitor.usecase.RunCycle.Evaluate: %v", err)
				return nil
			}
			if !d.ShouldEscalate {
				return nil
			}
			candidates[i] = &model.EscalationAlert{
				ComplaintID:      c.ID,
				CurrentLevel:     c.EscalationLevel,
				SuggestedLevel:   d.NewLevel,
				Reason:           d.Reason,
				Urgency:          model.UrgencyFromPriority(c.Priority),
				TimeElapsedHours: math.Round(d.HoursElapsed*10) / 10,
				RuleID:           d.RuleID,
				NotifyRoles:      d.NotifyRoles,
				DetectedAt:       now,
			}
			return nil
		})
	}

	result := monitor.CycleResult{Evaluated: len(complaints)}
	if err := g.Wait(); err != nil || ctx.Err() != nil {
		result.Aborted = true
		result.Duration = time.Since(start)
		return result
	}
	result.Errors = int(evalErrors.Load())

	alerts := make([]model.EscalationAlert, 0, len(candidates))
	var fresh []model.EscalationAlert
	uc.mu.Lock()
	held := make(map[alertKey]struct{}, len(uc.alerts))
	for _, a := range uc.alerts {
		held[keyOf(a)] = struct{}{}
	}
	for id, until := range uc.dismissed {
		if !now.Before(until) {
			delete(uc.dismissed, id)
		}
	}
	for _, a := range candidates {
		if a == nil {
			continue
		}
		if _, suppressed := uc.dismissed[a.ComplaintID]; suppressed {
			result.Suppressed++
			continue
		}
		alerts = append(alerts, *a)
		if _, ok := held[keyOf(*a)]; !ok {
			fresh = append(fresh, *a)
		}
	}
	uc.alerts = alerts
	result.Alerts = len(alerts)
	result.Duration = time.Since(start)
	uc.stats.Cycles++
	uc.stats.LastCycleAt = now
	uc.stats.LastCycle = result
	uc.mu.Unlock()

	// Only alerts not held after the previous cycle are audited, so a
	// long-standing alert yields one entry instead of one per cycle.
	for _, a := range fresh {
		uc.audit.Record(ctx, a.ComplaintID, audit.ActionAlertGenerated, audit.ActorSystem, map[string]any{
			"current_level":   a.CurrentLevel,
			"suggested_level": a.SuggestedLevel,
			"reason":          a.Reason,
			"time_elapsed":    a.TimeElapsedHours,
			"rule_id":         a.RuleID,
		})
	}

	uc.metrics.cycles.Inc()
	uc.metrics.cycleDuration.Observe(result.Duration.Seconds())
	uc.metrics.evalErrors.Add(float64(result.Errors))
	uc.metrics.alerts.Set(float64(len(alerts)))

	uc.logger.Debugf(ctx, "internal.monitor.usecase.RunCycle: evaluated=%d alerts=%d errors=%d suppressed=%d",
		result.Evaluated, result.Alerts, result.Errors, result.Suppressed)
	return result
}

type alertKey struct {
	complaintID string
	from, to    int
}

func keyOf(a model.EscalationAlert) alertKey {
	return alertKey{complaintID: a.ComplaintID, from: a.CurrentLevel, to: a.SuggestedLevel}
}

func (uc *implUseCase) Alerts(ctx context.Context) []model.EscalationAlert {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.EscalationAlert, len(uc.alerts))
	copy(out, uc.alerts)
	return out
}

func (uc *implUseCase) Stats(ctx context.Context) monitor.Stats {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	s := uc.stats
	s.Alerts = len(uc.alerts)
	return s
}
