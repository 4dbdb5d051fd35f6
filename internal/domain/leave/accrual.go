package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"fnf/internal/domain/calendar"
)

var monthsPerYear = decimal.NewFromInt(12)

// AccruedDays prorates an annual entitlement daily over [start, end], one calendar month at a
// time. A fully covered month earns entitlement/12; a partial month earns the share of that
// month's days it covers. Nothing is rounded.
func AccruedDays(start, end time.Time, entitlement decimal.Decimal) decimal.Decimal {
	start, end = calendar.Truncate(start), calendar.Truncate(end)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return decimal.Zero
	}

	monthly := entitlement.Div(monthsPerYear)
	total := decimal.Zero
	for cur := start; !cur.After(end); {
		monthStart := calendar.FirstOfMonth(cur)
		monthEnd := calendar.LastOfMonth(cur)
		segEnd := calendar.Earlier(end, monthEnd)

		if cur.Equal(monthStart) && segEnd.Equal(monthEnd) {
			total = total.Add(monthly)
		} else {
			segDays := decimal.NewFromInt(int64(calendar.DaysInclusive(cur, segEnd)))
			monthDays := decimal.NewFromInt(int64(calendar.DaysInMonth(cur)))
			total = total.Add(entitlement.Mul(segDays).Div(monthsPerYear.Mul(monthDays)))
		}
		cur = segEnd.AddDate(0, 0, 1)
	}
	return total
}
