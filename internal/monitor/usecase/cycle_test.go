package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
)

func TestRunCycleBuildsAlerts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{})
	h.submit(t, "crit", model.PriorityCritical, "technical", 5*time.Hour)
	h.submit(t, "high", model.PriorityHigh, "billing", 2*time.Hour)
	h.submit(t, "med", model.PriorityMedium, "product", 200*time.Hour)

	res := h.uc.RunCycle(ctx, h.all(t), testNow)
	assert.Equal(t, 3, res.Evaluated)
	assert.Equal(t, 2, res.Alerts)
	assert.Zero(t, res.Errors)

	alerts := h.uc.Alerts(ctx)
	require.Len(t, alerts, 2)
	assert.Equal(t, "crit", alerts[0].ComplaintID)
	assert.Equal(t, 0, alerts[0].CurrentLevel)
	assert.Equal(t, 2, alerts[0].SuggestedLevel)
	assert.Equal(t, model.UrgencyCritical, alerts[0].Urgency)
	assert.Equal(t, 5.0, alerts[0].TimeElapsedHours)
	assert.Equal(t, "critical-immediate", alerts[0].RuleID)

	assert.Equal(t, "med", alerts[1].ComplaintID)
	assert.Equal(t, model.UrgencyMedium, alerts[1].Urgency)

	entries := h.audit.List(ctx, "crit")
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionAlertGenerated, entries[0].Action)
	assert.Equal(t, audit.ActorSystem, entries[0].PerformedBy)
}

func TestRunCycleReplacesAlerts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{})
	a := h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)
	b := h.submit(t, "b", model.PriorityCritical, "service", 5*time.Hour)

	h.uc.RunCycle(ctx, []model.Complaint{a}, testNow)
	h.uc.RunCycle(ctx, []model.Complaint{b}, testNow)

	alerts := h.uc.Alerts(ctx)
	require.Len(t, alerts, 1)
	assert.Equal(t, "b", alerts[0].ComplaintID)
}

func TestRunCycleIsolatesMalformedComplaints(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{Workers: 2})
	good := h.submit(t, "good", model.PriorityCritical, "technical", 5*time.Hour)

	batch := []model.Complaint{
		{ID: "no-created-at", Category: "technical", Priority: model.PriorityCritical, Status: model.StatusNew},
		good,
		{ID: "bad-priority", Category: "technical", Priority: "urgent", Status: model.StatusNew, CreatedAt: testNow.Add(-10 * time.Hour)},
	}

	res := h.uc.RunCycle(ctx, batch, testNow)
	assert.Equal(t, 3, res.Evaluated)
	assert.Equal(t, 2, res.Errors)
	assert.Equal(t, 1, res.Alerts)
	require.Len(t, h.uc.Alerts(ctx), 1)
	assert.Equal(t, "good", h.uc.Alerts(ctx)[0].ComplaintID)
}

func TestRunCycleCancelledKeepsPreviousAlerts(t *testing.T) {
	h := newHarness(t, Config{})
	a := h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)
	h.uc.RunCycle(context.Background(), []model.Complaint{a}, testNow)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := h.uc.RunCycle(ctx, nil, testNow)
	assert.True(t, res.Aborted)
	assert.Len(t, h.uc.Alerts(context.Background()), 1)
}

func TestDismissReappearsNextCycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{})
	h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)

	h.uc.RunCycle(ctx, h.all(t), testNow)
	require.Len(t, h.uc.Alerts(ctx), 1)

	require.NoError(t, h.uc.Dismiss(ctx, "a"))
	assert.Empty(t, h.uc.Alerts(ctx))
	assert.ErrorIs(t, h.uc.Dismiss(ctx, "a"), monitor.ErrAlertNotFound)

	h.uc.RunCycle(ctx, h.all(t), testNow)
	assert.Len(t, h.uc.Alerts(ctx), 1)
	assert.Equal(t, 1, countActions(h.audit.List(ctx, "a"), audit.ActionAlertDismissed))
}

func TestRunCycleAuditsNewAlertsOnly(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{})
	h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)

	for i := 0; i < 5; i++ {
		h.uc.RunCycle(ctx, h.all(t), testNow.Add(time.Duration(i)*time.Minute))
	}
	require.Len(t, h.uc.Alerts(ctx), 1)
	assert.Equal(t, 1, countActions(h.audit.List(ctx, "a"), audit.ActionAlertGenerated))

	require.NoError(t, h.uc.Dismiss(ctx, "a"))
	h.uc.RunCycle(ctx, h.all(t), testNow.Add(10*time.Minute))
	h.uc.RunCycle(ctx, h.all(t), testNow.Add(11*time.Minute))
	assert.Equal(t, 2, countActions(h.audit.List(ctx, "a"), audit.ActionAlertGenerated))
}

func TestDismissCooldownSuppresses(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{DismissCooldown: time.Hour})
	h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)

	h.uc.RunCycle(ctx, h.all(t), testNow)
	require.NoError(t, h.uc.Dismiss(ctx, "a"))

	res := h.uc.RunCycle(ctx, h.all(t), testNow.Add(30*time.Minute))
	assert.Equal(t, 1, res.Suppressed)
	assert.Empty(t, h.uc.Alerts(ctx))

	res = h.uc.RunCycle(ctx, h.all(t), testNow.Add(2*time.Hour))
	assert.Zero(t, res.Suppressed)
	assert.Len(t, h.uc.Alerts(ctx), 1)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, Config{Interval: time.Minute})
	h.submit(t, "a", model.PriorityCritical, "technical", 5*time.Hour)

	h.uc.RunCycle(ctx, h.all(t), testNow)
	require.NoError(t, h.uc.Dismiss(ctx, "a"))

	s := h.uc.Stats(ctx)
	assert.Equal(t, int64(1), s.Cycles)
	assert.Equal(t, int64(1), s.Dismissals)
	assert.Equal(t, time.Minute, s.Interval)
	assert.Equal(t, testNow, s.LastCycleAt)
	assert.Zero(t, s.Alerts)
	assert.False(t, s.Monitoring)
}
