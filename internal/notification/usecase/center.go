package usecase

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
)

func (uc *implUseCase) Notify(ctx context.Context, ip notification.NotifyInput) notification.Notification {
	n := notification.Notification{
		ID:        uuid.NewString(),
		Type:      ip.Type,
		Title:     ip.Title,
		Message:   ip.Message,
		Priority:  ip.Priority,
		Timestamp: uc.clock(),
		Data:      maps.Clone(ip.Data),
	}
	if n.Priority == "" {
		n.Priority = notification.PriorityMedium
	}

	uc.mu.Lock()
	uc.notifications = append([]notification.Notification{n}, uc.notifications...)
	if len(uc.notifications) > notification.MaxStored {
		uc.notifications = uc.notifications[:notification.MaxStored]
	}
	subs := make([]subscriber, 0, len(uc.subscribers))
	for _, s := range uc.subscribers {
		subs = append(subs, s)
	}
	uc.mu.Unlock()

	for _, s := range subs {
		if !accepts(s.filter, n) {
			continue
		}
		uc.deliverToSubscriber(ctx, s, n)
	}

	return n
}

func (uc *implUseCase) deliverToSubscriber(ctx context.Context, s subscriber, n notification.Notification) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorf(ctx, "internal.notification.usecase.Notify: subscriber panicked: %v", r)
		}
	}()
	s.fn(n)
}

func accepts(f notification.Filter, n notification.Notification) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, n.Type) {
		return false
	}
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, n.Priority) {
		return false
	}
	return true
}

func (uc *implUseCase) NotifyEscalation(ctx context.Context, complaintID string, fromLevel, toLevel int, reason string) notification.Notification {
	return uc.Notify(ctx, notification.NotifyInput{
		Type:     notification.TypeEscalation,
		Title:    "Complaint Escalated",
		Message:  fmt.Sprintf("Complaint %s escalated from level %d to %d. Reason: %s", complaintID, fromLevel, toLevel, reason),
		Priority: escalationPriority(toLevel),
		Data: map[string]any{
			"complaint_id": complaintID,
			"from_level":   fromLevel,
			"to_level":     toLevel,
			"reason":       reason,
		},
	})
}

func escalationPriority(toLevel int) notification.Priority {
	switch {
	case toLevel >= 3:
		return notification.PriorityCritical
	case toLevel >= 2:
		return notification.PriorityHigh
	default:
		return notification.PriorityMedium
	}
}

func (uc *implUseCase) NotifyNewComplaint(ctx context.Context, c model.Complaint) notification.Notification {
	p := notification.PriorityMedium
	switch c.Priority {
	case model.PriorityCritical:
		p = notification.PriorityCritical
	case model.PriorityHigh:
		p = notification.PriorityHigh
	}
	return uc.Notify(ctx, notification.NotifyInput{
		Type:     notification.TypeNewComplaint,
		Title:    "New Complaint Received",
		Message:  fmt.Sprintf("%s (Priority: %s)", c.Title, c.Priority),
		Priority: p,
		Data: map[string]any{
			"complaint_id": c.ID,
			"title":        c.Title,
			"priority":     string(c.Priority),
		},
	})
}

func (uc *implUseCase) NotifyStatusUpdate(ctx context.Context, complaintID string, oldStatus, newStatus model.Status) notification.Notification {
	p := notification.PriorityMedium
	if newStatus == model.StatusResolved {
		p = notification.PriorityLow
	}
	return uc.Notify(ctx, notification.NotifyInput{
		Type:     notification.TypeStatusUpdate,
		Title:    "Complaint Status Updated",
		Message:  fmt.Sprintf("Complaint %s status changed from %s to %s", complaintID, oldStatus, newStatus),
		Priority: p,
		Data: map[string]any{
			"complaint_id": complaintID,
			"old_status":   string(oldStatus),
			"new_status":   string(newStatus),
		},
	})
}

func (uc *implUseCase) NotifySystemAlert(ctx context.Context, message string, priority notification.Priority, data map[string]any) notification.Notification {
	d := maps.Clone(data)
	if d == nil {
		d = map[string]any{}
	}
	d["source"] = "system"
	return uc.Notify(ctx, notification.NotifyInput{
		Type:     notification.TypeSystemAlert,
		Title:    "System Alert",
		Message:  message,
		Priority: priority,
		Data:     d,
	})
}

func (uc *implUseCase) ComplaintSubmitted(ctx context.Context, c model.Complaint) {
	uc.NotifyNewComplaint(ctx, c)
}

// List returns newest first.
func (uc *implUseCase) List(ctx context.Context, ip notification.ListInput) []notification.Notification {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]notification.Notification, 0, len(uc.notifications))
	for _, n := range uc.notifications {
		if ip.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
		if ip.Limit > 0 && len(out) == ip.Limit {
			break
		}
	}
	return out
}

func (uc *implUseCase) MarkRead(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.notifications {
		if uc.notifications[i].ID == id {
			uc.notifications[i].Read = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (uc *implUseCase) Clear(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.notifications = nil
}

func (uc *implUseCase) Subscribe(id string, f notification.Filter, fn func(notification.Notification)) func() {
	uc.mu.Lock()
	uc.subscribers[id] = subscriber{filter: f, fn: fn}
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.subscribers, id)
	}
}
