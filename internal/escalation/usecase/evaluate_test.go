package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/model"
	"escalation-srv/pkg/log"
)

func TestEvaluate_CriticalFiresAfterOneHour(t *testing.T) {
	uc := newTestUseCase(t, nil)
	c := complaintAged("c-1", model.PriorityCritical, "technical", 5)

	d, err := uc.Evaluate(c, testNow)
	require.NoError(t, err)
	assert.True(t, d.ShouldEscalate)
	assert.Equal(t, 2, d.NewLevel)
	assert.Equal(t, "critical-immediate", d.RuleID)
	assert.Equal(t, "Critical Issues - Immediate Escalation - 5.0 hours elapsed", d.Reason)
	assert.Equal(t, []string{"supervisor", "manager"}, d.NotifyRoles)
}

func TestEvaluate_HighBelowThreshold(t *testing.T) {
	uc := newTestUseCase(t, nil)
	c := complaintAged("c-2", model.PriorityHigh, "technical", 2)

	d, err := uc.Evaluate(c, testNow)
	require.NoError(t, err)
	assert.False(t, d.ShouldEscalate)
	assert.Zero(t, d.NewLevel)
	assert.Empty(t, d.Reason)
}

func TestEvaluate_LevelGating(t *testing.T) {
	uc := newTestUseCase(t, nil)
	c := complaintAged("c-3", model.PriorityCritical, "technical", 500)
	c.EscalationLevel = 2

	d, err := uc.Evaluate(c, testNow)
	require.NoError(t, err)
	assert.False(t, d.ShouldEscalate)
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	first := model.EscalationRule{
		ID:   "first",
		Name: "First",
		Conditions: model.RuleConditions{
			Priority:           []model.Priority{model.PriorityLow},
			Category:           []string{"product"},
			TimeThresholdHours: 1,
			StatusRequired:     []model.Status{model.StatusInProgress},
		},
		Actions: model.RuleActions{EscalateToLevel: 1},
	}
	second := first
	second.ID = "second"
	second.Name = "Second"
	second.Actions.EscalateToLevel = 3

	uc := newTestUseCase(t, []model.EscalationRule{first, second})
	d, err := uc.Evaluate(complaintAged("c-4", model.PriorityLow, "product", 10), testNow)
	require.NoError(t, err)
	assert.Equal(t, "first", d.RuleID)
	assert.Equal(t, 1, d.NewLevel)
}

func TestEvaluate_Rejections(t *testing.T) {
	tcs := map[string]struct {
		complaint model.Complaint
	}{
		"category not covered": {
			complaint: complaintAged("c", model.PriorityCritical, "billing", 10),
		},
		"status not required": {
			complaint: func() model.Complaint {
				c := complaintAged("c", model.PriorityCritical, "technical", 3)
				c.Status = model.StatusResolved
				return c
			}(),
		},
		"priority not covered": {
			complaint: complaintAged("c", model.PriorityLow, "technical", 1000),
		},
		"created in the future": {
			complaint: complaintAged("c", model.PriorityCritical, "technical", -2),
		},
	}

	uc := newTestUseCase(t, nil)
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := uc.Evaluate(tc.complaint, testNow)
			require.NoError(t, err)
			assert.False(t, d.ShouldEscalate)
		})
	}
}

func TestEvaluate_BusinessHoursOnly(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tcs := map[string]struct {
		priority model.Priority
		hours    float64
		want     bool
	}{
		"high at 4.5h counts in full":          {model.PriorityHigh, 4.5, true},
		"high at 20h capped to 8 business hrs": {model.PriorityHigh, 20, true},
		"medium at 30h is under 24 business":   {model.PriorityMedium, 30, false},
		"medium at 100h reaches 24 business":   {model.PriorityMedium, 100, true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := uc.Evaluate(complaintAged("c", tc.priority, "billing", tc.hours), testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.ShouldEscalate)
		})
	}
}

func TestEvaluate_ExcludeWeekends(t *testing.T) {
	r := model.EscalationRule{
		ID:   "weekend",
		Name: "Weekend",
		Conditions: model.RuleConditions{
			Priority:           []model.Priority{model.PriorityMedium},
			Category:           []string{"service"},
			TimeThresholdHours: 24,
			StatusRequired:     []model.Status{model.StatusNew},
			ExcludeWeekends:    true,
		},
		Actions: model.RuleActions{EscalateToLevel: 1},
	}
	uc := newTestUseCase(t, []model.EscalationRule{r})

	saturday := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	c := model.Complaint{ID: "w", Category: "service", Priority: model.PriorityMedium, Status: model.StatusNew, CreatedAt: saturday}

	d, err := uc.Evaluate(c, saturday.Add(60*time.Hour))
	require.NoError(t, err)
	assert.False(t, d.ShouldEscalate, "60h minus 48h weekend is below 24h")

	d, err = uc.Evaluate(c, saturday.Add(72*time.Hour))
	require.NoError(t, err)
	assert.True(t, d.ShouldEscalate)

	c.CreatedAt = testNow
	d, err = uc.Evaluate(c, testNow.Add(25*time.Hour))
	require.NoError(t, err)
	assert.True(t, d.ShouldEscalate, "weekday complaints are not adjusted")
}

func TestEvaluate_ExcludeWeekendsUsesLocation(t *testing.T) {
	r := model.EscalationRule{
		ID:   "weekend",
		Name: "Weekend",
		Conditions: model.RuleConditions{
			Priority:           []model.Priority{model.PriorityMedium},
			Category:           []string{"service"},
			TimeThresholdHours: 24,
			StatusRequired:     []model.Status{model.StatusNew},
			ExcludeWeekends:    true,
		},
		Actions: model.RuleActions{EscalateToLevel: 1},
	}
	uc := newTestUseCase(t, []model.EscalationRule{r})
	plus14 := time.FixedZone("UTC+14", 14*3600)
	ucShifted := New(log.NewNop(), uc.(*implUseCase).rules, uc.(*implUseCase).directory, Config{Location: plus14})

	// Friday 12:00 UTC is already Saturday in UTC+14.
	friday := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	c := model.Complaint{ID: "w", Category: "service", Priority: model.PriorityMedium, Status: model.StatusNew, CreatedAt: friday}
	now := friday.Add(30 * time.Hour)

	d, err := uc.Evaluate(c, now)
	require.NoError(t, err)
	assert.True(t, d.ShouldEscalate)

	d, err = ucShifted.Evaluate(c, now)
	require.NoError(t, err)
	assert.False(t, d.ShouldEscalate)
}

func TestEvaluate_Malformed(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tcs := map[string]struct {
		mutate func(*model.Complaint)
		field  string
	}{
		"missing id":         {func(c *model.Complaint) { c.ID = "" }, "id"},
		"missing created_at": {func(c *model.Complaint) { c.CreatedAt = time.Time{} }, "created_at"},
		"blank category":     {func(c *model.Complaint) { c.Category = " " }, "category"},
		"unknown priority":   {func(c *model.Complaint) { c.Priority = "urgent" }, "priority"},
		"unknown status":     {func(c *model.Complaint) { c.Status = "closed" }, "status"},
		"negative level":     {func(c *model.Complaint) { c.EscalationLevel = -1 }, "escalation_level"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c := complaintAged("bad", model.PriorityHigh, "technical", 10)
			tc.mutate(&c)

			_, err := uc.Evaluate(c, testNow)
			require.ErrorIs(t, err, escalation.ErrMalformedComplaint)

			var evalErr *escalation.EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tc.field, evalErr.Field)
		})
	}
}

func TestBusinessHoursElapsed(t *testing.T) {
	tcs := []struct {
		total float64
		want  float64
	}{
		{0, 0},
		{5, 5},
		{12, 8},
		{24, 8 * 5.0 / 7.0},
		{30, 8*5.0/7.0 + 6},
		{48, 16 * 5.0 / 7.0},
		{-3, 0},
	}

	for _, tc := range tcs {
		assert.InDelta(t, tc.want, businessHoursElapsed(tc.total), 1e-9, "total=%v", tc.total)
	}
}
