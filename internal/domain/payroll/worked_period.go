package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/salary"
)

// PeriodStart picks the first unpaid day of the calculation month: the month start, moved
// forward to the joining date or the day after the last slip when either falls inside
// (month start, calcDate]. The reference names the employee unless the slip decided the start.
func PeriodStart(calcDate time.Time, employeeID string, doj *time.Time, lastSlip *SalarySlip) (time.Time, ReferenceDoc) {
	calcDate = calendar.Truncate(calcDate)
	monthStart := calendar.FirstOfMonth(calcDate)
	start := monthStart
	ref := ReferenceDoc{Type: ReferenceEmployee, Name: employeeID}

	inMonth := func(d time.Time) bool {
		return d.After(monthStart) && !d.After(calcDate)
	}

	if doj != nil && !doj.IsZero() {
		if joined := calendar.Truncate(*doj); inMonth(joined) {
			start = calendar.Later(start, joined)
		}
	}
	if lastSlip != nil && !lastSlip.EndDate.IsZero() {
		next := calendar.Truncate(lastSlip.EndDate).AddDate(0, 0, 1)
		if inMonth(next) && !next.Before(start) {
			start = next
			ref = ReferenceDoc{Type: ReferenceSalarySlip, Name: lastSlip.ID}
		}
	}
	return start, ref
}

// ComputeWorkedPeriod prorates the monthly salary over [Start, End] at the fixed daily rate.
// A period ending on the last day of its month pays the full monthly salary instead.
func ComputeWorkedPeriod(in WorkedPeriodInput) WorkedPeriod {
	start, end := calendar.Truncate(in.Start), calendar.Truncate(in.End)
	wp := WorkedPeriod{
		Start:      start,
		End:        end,
		RatePerDay: salary.RatePerDay(in.MonthlySalary),
		Days:       decimal.Zero,
		Amount:     decimal.Zero,
	}
	if end.Before(start) {
		return wp
	}

	wp.ActualDays = calendar.DaysInclusive(start, end)
	if calendar.IsEndOfMonth(end) {
		wp.FullMonth = true
		wp.Days = decimal.NewFromInt(EndOfMonthDays)
		wp.Amount = in.MonthlySalary
		return wp
	}
	wp.Days = decimal.NewFromInt(int64(wp.ActualDays))
	wp.Amount = salary.Prorate(wp.Days, in.MonthlySalary)
	return wp
}
