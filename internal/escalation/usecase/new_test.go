package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) // Wednesday

func newTestUseCase(t *testing.T, rules []model.EscalationRule) escalation.UseCase {
	t.Helper()
	if rules == nil {
		rules = rule.Defaults()
	}
	set, err := rule.NewSet(rules)
	require.NoError(t, err)
	dir, err := hierarchy.New(hierarchy.Defaults())
	require.NoError(t, err)
	return New(log.NewNop(), set, dir, Config{Picker: NewRoundRobinPicker()})
}

func complaintAged(id string, p model.Priority, category string, hours float64) model.Complaint {
	return model.Complaint{
		ID:        id,
		Title:     "complaint " + id,
		Category:  category,
		Priority:  p,
		Status:    model.StatusInProgress,
		CreatedAt: testNow.Add(-time.Duration(hours * float64(time.Hour))),
	}
}
