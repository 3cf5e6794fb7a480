package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/audit"
	auditUC "escalation-srv/internal/audit/usecase"
	"escalation-srv/internal/complaint"
	"escalation-srv/internal/complaint/repository/memory"
	complaintUC "escalation-srv/internal/complaint/usecase"
	escalationUC "escalation-srv/internal/escalation/usecase"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
	notificationUC "escalation-srv/internal/notification/usecase"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

type harness struct {
	uc         *implUseCase
	complaints complaint.UseCase
	audit      audit.UseCase
	notifier   notification.UseCase
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	sink := notificationUC.NewLogSender(log.NewNop())
	return newHarnessWithSenders(t, cfg, map[notification.Channel]notification.Sender{
		notification.ChannelEmail: sink,
		notification.ChannelSMS:   sink,
	})
}

func newHarnessWithSenders(t *testing.T, cfg Config, senders map[notification.Channel]notification.Sender) *harness {
	t.Helper()
	l := log.NewNop()

	rules, err := rule.NewSet(rule.Defaults())
	require.NoError(t, err)
	dir, err := hierarchy.New(hierarchy.Defaults())
	require.NoError(t, err)

	engine := escalationUC.New(l, rules, dir, escalationUC.Config{Picker: escalationUC.NewRoundRobinPicker()})
	complaints := complaintUC.New(l, memory.New(l))
	auditor := auditUC.New(l)
	notifier := notificationUC.New(l, nil, senders)

	m := New(l, cfg, Deps{
		Engine:     engine,
		Rules:      rules,
		Directory:  dir,
		Complaints: complaints,
		Audit:      auditor,
		Notifier:   notifier,
		Registerer: prometheus.NewRegistry(),
	}).(*implUseCase)
	m.clock = func() time.Time { return testNow }

	return &harness{uc: m, complaints: complaints, audit: auditor, notifier: notifier}
}

func (h *harness) submit(t *testing.T, id string, p model.Priority, category string, age time.Duration) model.Complaint {
	t.Helper()
	c, err := h.complaints.Submit(context.Background(), complaint.SubmitInput{
		ID:        id,
		Title:     "complaint " + id,
		Category:  category,
		Priority:  p,
		CreatedAt: testNow.Add(-age),
	})
	require.NoError(t, err)
	return c
}

func (h *harness) all(t *testing.T) []model.Complaint {
	t.Helper()
	cs, err := h.complaints.List(context.Background(), complaint.ListInput{})
	require.NoError(t, err)
	return cs
}

func countActions(entries []audit.Entry, action string) int {
	n := 0
	for _, e := range entries {
		if e.Action == action {
			n++
		}
	}
	return n
}
