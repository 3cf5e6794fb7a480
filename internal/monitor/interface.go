package monitor

import (
	"context"
	"time"

	"escalation-srv/internal/model"
)

//go:generate mockery --name UseCase

// UseCase periodically re-evaluates complaints and holds the resulting
// escalation alerts until an operator commits or dismisses them.
type UseCase interface {
	// Start runs one cycle right away and then one per interval. It is a
	// no-op while monitoring.
	Start(ctx context.Context) error
	// Stop cancels the schedule and waits for an in-flight cycle. Held
	// alerts stay visible.
	Stop(ctx context.Context) error
	IsMonitoring() bool

	// RunCycle evaluates the given complaints and replaces the alert set.
	RunCycle(ctx context.Context, complaints []model.Complaint, now time.Time) CycleResult
	// Refresh loads every complaint and runs a cycle.
	Refresh(ctx context.Context) (CycleResult, error)

	Alerts(ctx context.Context) []model.EscalationAlert
	Escalate(ctx context.Context, ip EscalateInput) (EscalateOutput, error)
	Dismiss(ctx context.Context, complaintID string) error
	Stats(ctx context.Context) Stats

	// ComplaintSubmitted starts monitoring when auto-start is enabled.
	ComplaintSubmitted(ctx context.Context, c model.Complaint)
	// Shutdown stops monitoring and waits for background notifications.
	Shutdown(ctx context.Context) error
}
