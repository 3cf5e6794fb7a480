package usecase

import (
	"math"
	"time"

	"escalation-srv/internal/model"
)

const (
	hoursPerDay         = 24
	businessHoursPerDay = 8
	weekendHours        = 48
)

// effectiveHours applies the business-hours or weekend adjustment to the raw
// elapsed time. businessHoursOnly wins over excludeWeekends.
func effectiveHours(createdAt time.Time, cond model.RuleConditions, hoursElapsed float64, loc *time.Location) float64 {
	switch {
	case cond.BusinessHoursOnly:
		return businessHoursElapsed(hoursElapsed)
	case cond.ExcludeWeekends:
		return weekendAdjusted(createdAt, hoursElapsed, loc)
	default:
		return hoursElapsed
	}
}

// businessHoursElapsed is a rough estimate: 8 business hours per day, 5 of 7
// days. It is intentionally not calendar-accurate.
func businessHoursElapsed(totalHours float64) float64 {
	businessDays := math.Floor(totalHours/hoursPerDay) * (5.0 / 7.0)
	remaining := math.Mod(totalHours, hoursPerDay)
	return math.Max(0, businessDays*businessHoursPerDay+math.Min(remaining, businessHoursPerDay))
}

// weekendAdjusted drops up to 48 hours when the complaint was filed on a weekend.
func weekendAdjusted(createdAt time.Time, hoursElapsed float64, loc *time.Location) float64 {
	switch createdAt.In(loc).Weekday() {
	case time.Saturday, time.Sunday:
		return math.Max(0, hoursElapsed-math.Min(hoursElapsed, weekendHours))
	default:
		return hoursElapsed
	}
}
