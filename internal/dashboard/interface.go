package dashboard

import (
	"context"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
)

// UseCase keeps live dashboard connections and pushes escalation traffic to them.
type UseCase interface {
	// Run drives the hub until Shutdown. It blocks.
	Run()
	Shutdown(ctx context.Context) error

	Register(ctx context.Context, ip RegisterInput) error
	Stats(ctx context.Context) Stats

	// HandleEvent routes a published dashboard event to matching connections.
	HandleEvent(ctx context.Context, ip EventInput) error
	// Publish pushes a notification center entry to every connection.
	Publish(ctx context.Context, n notification.Notification)
}

// AlertSource supplies the alert list sent to a client when it connects.
type AlertSource interface {
	Alerts(ctx context.Context) []model.EscalationAlert
}
