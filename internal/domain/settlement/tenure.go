package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"fnf/internal/domain/calendar"
)

var daysPerYear = decimal.NewFromInt(365)

type ServiceDuration struct {
	Years  int
	Months int
	Days   int
	// YearsDecimal is the inclusive day count of the whole span over 365.
	YearsDecimal decimal.Decimal
}

// ComputeServiceDuration splits [doj, asOf] into calendar years, months and remaining days.
// Month steps clamp to the target month's length, so Jan 31 plus one month lands on Feb 28/29.
// asOf before doj yields zeros.
func ComputeServiceDuration(doj, asOf time.Time) ServiceDuration {
	doj, asOf = calendar.Truncate(doj), calendar.Truncate(asOf)
	if doj.IsZero() || asOf.IsZero() || asOf.Before(doj) {
		return ServiceDuration{YearsDecimal: decimal.Zero}
	}

	months := (asOf.Year()-doj.Year())*12 + int(asOf.Month()-doj.Month())
	anchor := calendar.AddMonthsClamped(doj, months)
	if anchor.After(asOf) {
		months--
		anchor = calendar.AddMonthsClamped(doj, months)
	}
	days := calendar.DaysInclusive(anchor, asOf) - 1

	return ServiceDuration{
		Years:        months / 12,
		Months:       months % 12,
		Days:         days,
		YearsDecimal: decimal.NewFromInt(int64(calendar.DaysInclusive(doj, asOf))).Div(daysPerYear),
	}
}
