package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
)

func TestSelectAssignee(t *testing.T) {
	uc := newTestUseCase(t, nil)
	group := model.StakeholderGroup{
		Level: 0,
		Members: []model.StakeholderMember{
			{ID: "a", IsActive: true},
			{ID: "b", IsActive: false},
			{ID: "c", IsActive: true},
		},
	}

	var picked []string
	for i := 0; i < 4; i++ {
		m, err := uc.SelectAssignee(group)
		require.NoError(t, err)
		picked = append(picked, m.ID)
	}
	assert.Equal(t, []string{"a", "c", "a", "c"}, picked)

	_, err := uc.SelectAssignee(model.StakeholderGroup{Members: []model.StakeholderMember{{ID: "x"}}})
	assert.ErrorIs(t, err, escalation.ErrNoEligibleAssignee)
}

func TestRandomPickerIsReproducible(t *testing.T) {
	p1 := NewRandomPicker(42)
	p2 := NewRandomPicker(42)
	for i := 0; i < 20; i++ {
		a := p1.Pick(5)
		assert.Equal(t, a, p2.Pick(5))
		assert.True(t, a >= 0 && a < 5)
	}
	assert.Equal(t, -1, p1.Pick(0))
}

func TestResolveGroup(t *testing.T) {
	uc := newTestUseCase(t, nil)

	g, err := uc.ResolveGroup(2)
	require.NoError(t, err)
	assert.Equal(t, "managers", g.ID)

	_, err = uc.ResolveGroup(9)
	assert.ErrorIs(t, err, hierarchy.ErrGroupNotFound)
}

func TestEscalationPath(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tcs := map[string]struct {
		complaint model.Complaint
		want      []int
	}{
		"critical technical from 0": {
			complaint: complaintAged("c", model.PriorityCritical, "technical", 0),
			want:      []int{2, 3},
		},
		"high billing from 0": {
			complaint: complaintAged("c", model.PriorityHigh, "billing", 0),
			want:      []int{1},
		},
		"medium product from 1": {
			complaint: func() model.Complaint {
				c := complaintAged("c", model.PriorityMedium, "product", 0)
				c.EscalationLevel = 1
				return c
			}(),
			want: []int{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, uc.EscalationPath(tc.complaint))
		})
	}
}

func TestEstimateResolutionTime(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tcs := []struct {
		priority model.Priority
		level    int
		want     int
	}{
		{model.PriorityCritical, 0, 3},
		{model.PriorityCritical, 3, 1},
		{model.PriorityHigh, 2, 6},
		{model.PriorityMedium, 1, 24},
		{model.PriorityLow, 0, 108},
		{model.PriorityLow, 7, 72},
		{"unknown", 2, 19},
	}

	for _, tc := range tcs {
		c := model.Complaint{Priority: tc.priority}
		assert.Equal(t, tc.want, uc.EstimateResolutionTime(c, tc.level), "%s@%d", tc.priority, tc.level)
	}
}

func TestRoute(t *testing.T) {
	uc := newTestUseCase(t, nil)
	ctx := context.Background()

	t.Run("critical technical at level 2", func(t *testing.T) {
		c := complaintAged("c", model.PriorityCritical, "technical", 1)
		c.EscalationLevel = 2

		out := uc.Route(ctx, c)
		require.NotNil(t, out.AssignedTo)
		assert.Equal(t, []int{3}, out.EscalationPath)
		assert.Equal(t, 2, out.EstimatedResolutionHours)
		assert.Equal(t, []string{
			"Immediate response required within 1 hour",
			"Consider setting up war room for coordination",
			"Prepare executive briefing",
			"Engage technical team for root cause analysis",
			"Check system monitoring for related issues",
			"Consider process improvements to prevent recurrence",
			"Review escalation triggers for similar issues",
		}, out.RecommendedActions)
	})

	t.Run("missing group", func(t *testing.T) {
		c := complaintAged("c", model.PriorityLow, "billing", 1)
		c.EscalationLevel = 8

		out := uc.Route(ctx, c)
		assert.Nil(t, out.AssignedTo)
		assert.Empty(t, out.EscalationPath)
		assert.Equal(t, 24, out.EstimatedResolutionHours)
		assert.Equal(t, []string{"Create stakeholder group for this level"}, out.RecommendedActions)
	})

	t.Run("low billing at level 0", func(t *testing.T) {
		out := uc.Route(ctx, complaintAged("c", model.PriorityLow, "billing", 1))
		assert.Equal(t, []string{
			"Review account history and transactions",
			"Prepare refund/credit if applicable",
		}, out.RecommendedActions)
	})
}
