package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
	"escalation-srv/pkg/log"
)

func newTestCenter() *implUseCase {
	return New(log.NewNop(), nil, nil).(*implUseCase)
}

func TestNotifyKeepsLatest(t *testing.T) {
	ctx := context.Background()
	uc := newTestCenter()

	for i := 0; i < notification.MaxStored+5; i++ {
		uc.Notify(ctx, notification.NotifyInput{Type: notification.TypeSystemAlert, Message: fmt.Sprintf("m%d", i)})
	}

	all := uc.List(ctx, notification.ListInput{})
	require.Len(t, all, notification.MaxStored)
	assert.Equal(t, fmt.Sprintf("m%d", notification.MaxStored+4), all[0].Message)
	assert.Equal(t, "m5", all[len(all)-1].Message)
	assert.Equal(t, notification.PriorityMedium, all[0].Priority)

	assert.Len(t, uc.List(ctx, notification.ListInput{Limit: 3}), 3)

	uc.Clear(ctx)
	assert.Empty(t, uc.List(ctx, notification.ListInput{}))
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	uc := newTestCenter()

	a := uc.Notify(ctx, notification.NotifyInput{Message: "a"})
	uc.Notify(ctx, notification.NotifyInput{Message: "b"})

	require.NoError(t, uc.MarkRead(ctx, a.ID))
	assert.ErrorIs(t, uc.MarkRead(ctx, "missing"), notification.ErrNotificationNotFound)

	unread := uc.List(ctx, notification.ListInput{UnreadOnly: true})
	require.Len(t, unread, 1)
	assert.Equal(t, "b", unread[0].Message)
}

func TestSubscribeFilters(t *testing.T) {
	ctx := context.Background()
	uc := newTestCenter()

	var all, critical []notification.Notification
	unsubAll := uc.Subscribe("all", notification.Filter{}, func(n notification.Notification) {
		all = append(all, n)
	})
	uc.Subscribe("critical-escalations", notification.Filter{
		Types:      []notification.Type{notification.TypeEscalation},
		Priorities: []notification.Priority{notification.PriorityCritical},
	}, func(n notification.Notification) {
		critical = append(critical, n)
	})
	uc.Subscribe("broken", notification.Filter{}, func(notification.Notification) {
		panic("boom")
	})

	uc.NotifyEscalation(ctx, "c1", 0, 1, "r")
	uc.NotifyEscalation(ctx, "c1", 1, 3, "r")
	uc.NotifySystemAlert(ctx, "disk", notification.PriorityCritical, nil)

	assert.Len(t, all, 3)
	require.Len(t, critical, 1)
	assert.Equal(t, 3, critical[0].Data["to_level"])

	unsubAll()
	uc.NotifySystemAlert(ctx, "again", notification.PriorityLow, nil)
	assert.Len(t, all, 3)
}

func TestTemplates(t *testing.T) {
	ctx := context.Background()
	uc := newTestCenter()

	tcs := []struct {
		toLevel int
		want    notification.Priority
	}{
		{1, notification.PriorityMedium},
		{2, notification.PriorityHigh},
		{3, notification.PriorityCritical},
		{4, notification.PriorityCritical},
	}
	for _, tc := range tcs {
		n := uc.NotifyEscalation(ctx, "c9", tc.toLevel-1, tc.toLevel, "threshold")
		assert.Equal(t, tc.want, n.Priority, "to level %d", tc.toLevel)
	}

	n := uc.NotifyEscalation(ctx, "c9", 0, 2, "Critical Issues - 5.0 hours elapsed")
	assert.Equal(t, "Complaint c9 escalated from level 0 to 2. Reason: Critical Issues - 5.0 hours elapsed", n.Message)

	n = uc.NotifyNewComplaint(ctx, model.Complaint{ID: "c1", Title: "Outage", Priority: model.PriorityLow})
	assert.Equal(t, notification.TypeNewComplaint, n.Type)
	assert.Equal(t, notification.PriorityMedium, n.Priority)
	assert.Equal(t, "Outage (Priority: low)", n.Message)

	n = uc.NotifyStatusUpdate(ctx, "c1", model.StatusEscalated, model.StatusResolved)
	assert.Equal(t, notification.PriorityLow, n.Priority)

	n = uc.NotifySystemAlert(ctx, "x", notification.PriorityHigh, map[string]any{"k": "v"})
	assert.Equal(t, "system", n.Data["source"])
	assert.Equal(t, "v", n.Data["k"])

	uc.ComplaintSubmitted(ctx, model.Complaint{ID: "c2", Title: "Billing", Priority: model.PriorityCritical})
	latest := uc.List(ctx, notification.ListInput{Limit: 1})
	require.Len(t, latest, 1)
	assert.Equal(t, notification.PriorityCritical, latest[0].Priority)
}
