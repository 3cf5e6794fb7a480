package notification

import (
	"context"

	"escalation-srv/internal/model"
)

// Center keeps recent notifications and fans them out to in-process
// subscribers.
type Center interface {
	Notify(ctx context.Context, ip NotifyInput) Notification
	NotifyEscalation(ctx context.Context, complaintID string, fromLevel, toLevel int, reason string) Notification
	NotifyNewComplaint(ctx context.Context, c model.Complaint) Notification
	NotifyStatusUpdate(ctx context.Context, complaintID string, oldStatus, newStatus model.Status) Notification
	NotifySystemAlert(ctx context.Context, message string, priority Priority, data map[string]any) Notification
	List(ctx context.Context, ip ListInput) []Notification
	MarkRead(ctx context.Context, id string) error
	Clear(ctx context.Context)
	// Subscribe registers fn under id, replacing an existing subscriber with
	// the same id. The returned func unsubscribes.
	Subscribe(id string, f Filter, fn func(Notification)) func()
	ComplaintSubmitted(ctx context.Context, c model.Complaint)
}

// Dispatcher delivers an escalation to every channel the group enabled.
// It never fails; per-channel problems are in the Report.
type Dispatcher interface {
	Dispatch(ctx context.Context, ip DispatchInput) Report
}

// Sender delivers one message on one channel.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Publisher pushes payloads to a pub/sub channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	Center
	Dispatcher
}
