package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"escalation-srv/internal/notification"
)

func (uc *implUseCase) Dispatch(ctx context.Context, ip notification.DispatchInput) notification.Report {
	msgs := uc.plan(ip)
	deliveries := make([]notification.Delivery, len(msgs))

	var g errgroup.Group
	for i, msg := range msgs {
		g.Go(func() error {
			deliveries[i] = uc.deliver(ctx, msg)
			return nil
		})
	}
	_ = g.Wait()

	report := notification.Report{
		ComplaintID: ip.Complaint.ID,
		Level:       ip.ToLevel,
		Deliveries:  deliveries,
	}

	for _, d := range report.Failed() {
		uc.logger.Warnf(ctx, "internal.notification.usecase.Dispatch: %s delivery for %s failed: %s", d.Channel, ip.Complaint.ID, d.Error)
		uc.NotifySystemAlert(ctx,
			fmt.Sprintf("Failed to deliver %s notification for complaint %s", d.Channel, ip.Complaint.ID),
			notification.PriorityMedium,
			map[string]any{
				"complaint_id": ip.Complaint.ID,
				"channel":      string(d.Channel),
				"error":        d.Error,
			},
		)
	}

	return report
}

// plan turns the group's preferences into one message per enabled channel.
func (uc *implUseCase) plan(ip notification.DispatchInput) []notification.Message {
	prefs := ip.Group.NotificationPreferences
	active := ip.Group.ActiveMembers()

	base := notification.Message{
		Subject:     fmt.Sprintf("Complaint %s escalated to level %d", ip.Complaint.ID, ip.ToLevel),
		Body:        fmt.Sprintf("%s (priority %s, category %s) moved from level %d to %d. Reason: %s", ip.Complaint.Title, ip.Complaint.Priority, ip.Complaint.Category, ip.FromLevel, ip.ToLevel, ip.Reason),
		Complaint:   ip.Complaint,
		GroupName:   ip.Group.Name,
		FromLevel:   ip.FromLevel,
		ToLevel:     ip.ToLevel,
		Reason:      ip.Reason,
		NotifyRoles: ip.NotifyRoles,
		Timestamp:   uc.clock(),
	}
	with := func(ch notification.Channel, recipients []string) notification.Message {
		m := base
		m.Channel = ch
		m.Recipients = recipients
		return m
	}

	var msgs []notification.Message
	if prefs.Email {
		var emails []string
		for _, m := range active {
			if m.Email != "" {
				emails = append(emails, m.Email)
			}
		}
		msgs = append(msgs, with(notification.ChannelEmail, emails))
	}
	if prefs.SMS {
		var phones []string
		for _, m := range active {
			if m.Phone != "" {
				phones = append(phones, m.Phone)
			}
		}
		msgs = append(msgs, with(notification.ChannelSMS, phones))
	}
	if prefs.Dashboard {
		roles := slices.Clone(ip.NotifyRoles)
		if len(roles) == 0 {
			for _, m := range active {
				if !slices.Contains(roles, m.Role) {
					roles = append(roles, m.Role)
				}
			}
		}
		msgs = append(msgs, with(notification.ChannelDashboard, roles))
	}
	if prefs.Webhook != "" {
		msgs = append(msgs, with(notification.ChannelWebhook, []string{prefs.Webhook}))
	}
	if prefs.SlackChannel != "" {
		msgs = append(msgs, with(notification.ChannelSlack, []string{prefs.SlackChannel}))
	}
	if prefs.TeamsChannel != "" {
		msgs = append(msgs, with(notification.ChannelTeams, []string{prefs.TeamsChannel}))
	}
	return msgs
}

func (uc *implUseCase) deliver(ctx context.Context, msg notification.Message) notification.Delivery {
	d := notification.Delivery{Channel: msg.Channel, Recipients: msg.Recipients}

	if len(msg.Recipients) == 0 {
		uc.logger.Warnf(ctx, "internal.notification.usecase.deliver: %s for %s: %v", msg.Channel, msg.Complaint.ID, notification.ErrNoRecipients)
		d.Skipped = true
		return d
	}

	var err error
	if msg.Channel == notification.ChannelDashboard {
		err = uc.deliverDashboard(ctx, msg)
	} else {
		sender, ok := uc.senders[msg.Channel]
		if !ok {
			uc.logger.Debugf(ctx, "internal.notification.usecase.deliver: no sender for %s", msg.Channel)
			d.Skipped = true
			return d
		}
		err = uc.send(ctx, sender, msg)
	}
	if err != nil {
		d.Error = err.Error()
	}
	return d
}

func (uc *implUseCase) send(ctx context.Context, sender notification.Sender, msg notification.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", notification.ErrDeliveryFailed, r)
		}
	}()
	return sender.Send(ctx, msg)
}

func (uc *implUseCase) deliverDashboard(ctx context.Context, msg notification.Message) error {
	n := uc.NotifyEscalation(ctx, msg.Complaint.ID, msg.FromLevel, msg.ToLevel, msg.Reason)
	if uc.publisher == nil {
		return nil
	}

	payload, err := json.Marshal(notification.DashboardEvent{
		Type:         notification.TypeEscalation,
		ComplaintID:  msg.Complaint.ID,
		Level:        msg.ToLevel,
		Roles:        msg.Recipients,
		Notification: n,
	})
	if err != nil {
		return err
	}
	if err := uc.publisher.Publish(ctx, DashboardChannel, payload); err != nil {
		return fmt.Errorf("%w: publish %s: %v", notification.ErrDeliveryFailed, DashboardChannel, err)
	}
	return nil
}
