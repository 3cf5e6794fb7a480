package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"escalation-srv/internal/dashboard"
	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
)

func (uc *implUseCase) Register(ctx context.Context, ip dashboard.RegisterInput) error {
	if ip.Conn == nil {
		return dashboard.ErrMissingConnection
	}

	c := &Connection{
		hub:        uc.hub,
		conn:       ip.Conn,
		clientID:   ip.ClientID,
		roles:      ip.Roles,
		send:       make(chan []byte, uc.cfg.SendBuffer),
		pongWait:   uc.cfg.PongWait,
		pingPeriod: uc.cfg.PingPeriod,
		writeWait:  uc.cfg.WriteWait,
		logger:     uc.logger,
		done:       make(chan struct{}),
	}

	snapshot, err := uc.encode(dashboard.FrameSnapshot, dashboard.SnapshotPayload{Alerts: uc.snapshot(ctx)})
	if err != nil {
		return err
	}
	c.send <- snapshot

	if err := uc.hub.join(ctx, c); err != nil {
		c.Close()
		return err
	}
	c.start()
	return nil
}

func (uc *implUseCase) snapshot(ctx context.Context) []model.EscalationAlert {
	if uc.alerts == nil {
		return []model.EscalationAlert{}
	}
	return uc.alerts.Alerts(ctx)
}

func (uc *implUseCase) HandleEvent(ctx context.Context, ip dashboard.EventInput) error {
	var ev notification.DashboardEvent
	if err := json.Unmarshal(ip.Payload, &ev); err != nil {
		return fmt.Errorf("%w: %s: %v", dashboard.ErrInvalidMessage, ip.Channel, err)
	}
	if ev.ComplaintID == "" {
		return fmt.Errorf("%w: %s: missing complaint_id", dashboard.ErrInvalidMessage, ip.Channel)
	}

	data, err := uc.encode(dashboard.FrameEscalation, ev)
	if err != nil {
		return err
	}
	return uc.hub.send(outbound{data: data, roles: ev.Roles})
}

func (uc *implUseCase) Publish(ctx context.Context, n notification.Notification) {
	data, err := uc.encode(dashboard.FrameNotification, n)
	if err != nil {
		uc.logger.Errorf(ctx, "internal.dashboard.usecase.Publish.encode: %v", err)
		return
	}
	if err := uc.hub.send(outbound{data: data}); err != nil {
		uc.logger.Warnf(ctx, "internal.dashboard.usecase.Publish.send: %v", err)
	}
}

func (uc *implUseCase) encode(t dashboard.FrameType, payload any) ([]byte, error) {
	return json.Marshal(dashboard.Frame{
		Type:      t,
		Timestamp: uc.clock().UTC(),
		Payload:   payload,
	})
}
