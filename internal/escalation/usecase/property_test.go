package usecase

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"escalation-srv/internal/model"
)

var (
	genPriority = gen.OneConstOf(model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical)
	genStatus   = gen.OneConstOf(model.StatusNew, model.StatusInProgress, model.StatusEscalated, model.StatusResolved)
	genCategory = gen.OneConstOf("technical", "billing", "service", "product")
)

func propertyComplaint(p model.Priority, s model.Status, category string, level int, hours float64) model.Complaint {
	return model.Complaint{
		ID:              "prop",
		Category:        category,
		Priority:        p,
		Status:          s,
		EscalationLevel: level,
		CreatedAt:       testNow.Add(-time.Duration(hours * float64(time.Hour))),
	}
}

func TestEvaluateProperties(t *testing.T) {
	uc := newTestUseCase(t, nil)
	impl := uc.(*implUseCase)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("evaluation is deterministic", prop.ForAll(
		func(p model.Priority, s model.Status, category string, level int, hours float64) bool {
			c := propertyComplaint(p, s, category, level, hours)
			d1, err1 := uc.Evaluate(c, testNow)
			d2, err2 := uc.Evaluate(c, testNow)
			return reflect.DeepEqual(d1, d2) && reflect.DeepEqual(err1, err2)
		},
		genPriority, genStatus, genCategory, gen.IntRange(0, 4), gen.Float64Range(-10, 500),
	))

	properties.Property("never escalates before the adjusted threshold", prop.ForAll(
		func(p model.Priority, s model.Status, category string, level int, hours float64) bool {
			c := propertyComplaint(p, s, category, level, hours)
			d, err := uc.Evaluate(c, testNow)
			if err != nil || !d.ShouldEscalate {
				return err == nil
			}
			r, err := impl.rules.Get(d.RuleID)
			if err != nil {
				return false
			}
			elapsed := testNow.Sub(c.CreatedAt).Hours()
			return elapsed >= r.Conditions.TimeThresholdHours &&
				effectiveHours(c.CreatedAt, r.Conditions, elapsed, time.UTC) >= r.Conditions.TimeThresholdHours
		},
		genPriority, genStatus, genCategory, gen.IntRange(0, 4), gen.Float64Range(0, 500),
	))

	properties.Property("a fired rule always targets a higher level", prop.ForAll(
		func(p model.Priority, s model.Status, category string, level int, hours float64) bool {
			c := propertyComplaint(p, s, category, level, hours)
			d, err := uc.Evaluate(c, testNow)
			if err != nil {
				return false
			}
			return !d.ShouldEscalate || d.NewLevel > c.EscalationLevel
		},
		genPriority, genStatus, genCategory, gen.IntRange(0, 4), gen.Float64Range(0, 500),
	))

	properties.TestingRun(t)
}
