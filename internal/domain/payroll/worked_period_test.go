package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fnf/internal/domain/calendar"
)

func TestComputeWorkedPeriod(t *testing.T) {
	monthly := decimal.NewFromInt(3000)

	tests := []struct {
		name       string
		start      time.Time
		end        time.Time
		wantDays   string
		wantAmount string
		wantActual int
		fullMonth  bool
	}{
		{
			name:       "mid month span",
			start:      calendar.Date(2024, time.June, 20),
			end:        calendar.Date(2024, time.June, 25),
			wantDays:   "6",
			wantAmount: "600",
			wantActual: 6,
		},
		{
			name:       "month start to relieving date",
			start:      calendar.Date(2024, time.June, 1),
			end:        calendar.Date(2024, time.June, 15),
			wantDays:   "15",
			wantAmount: "1500",
			wantActual: 15,
		},
		{
			name:       "ends on last day of a 30 day month",
			start:      calendar.Date(2024, time.June, 16),
			end:        calendar.Date(2024, time.June, 30),
			wantDays:   "30",
			wantAmount: "3000",
			wantActual: 15,
			fullMonth:  true,
		},
		{
			name:       "ends on february 29",
			start:      calendar.Date(2024, time.February, 1),
			end:        calendar.Date(2024, time.February, 29),
			wantDays:   "30",
			wantAmount: "3000",
			wantActual: 29,
			fullMonth:  true,
		},
		{
			name:       "single day",
			start:      calendar.Date(2024, time.March, 7),
			end:        calendar.Date(2024, time.March, 7),
			wantDays:   "1",
			wantAmount: "100",
			wantActual: 1,
		},
		{
			name:       "short span ending at month end",
			start:      calendar.Date(2024, time.June, 20),
			end:        calendar.Date(2024, time.June, 30),
			wantDays:   "30",
			wantAmount: "3000",
			wantActual: 11,
			fullMonth:  true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			wp := ComputeWorkedPeriod(WorkedPeriodInput{Start: tc.start, End: tc.end, MonthlySalary: monthly})
			assert.True(t, decimal.RequireFromString(tc.wantDays).Equal(wp.Days), "days %s", wp.Days)
			assert.True(t, decimal.RequireFromString(tc.wantAmount).Equal(wp.Amount), "amount %s", wp.Amount)
			assert.Equal(t, tc.wantActual, wp.ActualDays)
			assert.Equal(t, tc.fullMonth, wp.FullMonth)
			assert.True(t, decimal.NewFromInt(100).Equal(wp.RatePerDay))
		})
	}
}

func TestComputeWorkedPeriodAmountIsExact(t *testing.T) {
	wp := ComputeWorkedPeriod(WorkedPeriodInput{
		Start:         calendar.Date(2024, time.June, 1),
		End:           calendar.Date(2024, time.June, 15),
		MonthlySalary: decimal.NewFromInt(1000),
	})
	assert.Equal(t, "500", wp.Amount.String())
	assert.True(t, decimal.NewFromInt(1000).Div(decimal.NewFromInt(30)).Equal(wp.RatePerDay))
}

func TestComputeWorkedPeriodEndBeforeStart(t *testing.T) {
	wp := ComputeWorkedPeriod(WorkedPeriodInput{
		Start:         calendar.Date(2024, time.June, 20),
		End:           calendar.Date(2024, time.June, 19),
		MonthlySalary: decimal.NewFromInt(3000),
	})
	assert.True(t, wp.Days.IsZero())
	assert.True(t, wp.Amount.IsZero())
	assert.Zero(t, wp.ActualDays)
	assert.False(t, wp.FullMonth)
}

func TestComputeWorkedPeriodEndBeforeStartAtMonthEnd(t *testing.T) {
	wp := ComputeWorkedPeriod(WorkedPeriodInput{
		Start:         calendar.Date(2024, time.July, 1),
		End:           calendar.Date(2024, time.June, 30),
		MonthlySalary: decimal.NewFromInt(3000),
	})
	assert.True(t, wp.Amount.IsZero())
	assert.False(t, wp.FullMonth)
}

func TestPeriodStart(t *testing.T) {
	calcDate := calendar.Date(2024, time.June, 15)
	ptr := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name      string
		doj       *time.Time
		slip      *SalarySlip
		wantStart time.Time
		wantRef   ReferenceDoc
	}{
		{
			name:      "no slip",
			doj:       ptr(calendar.Date(2023, time.January, 1)),
			wantStart: calendar.Date(2024, time.June, 1),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "joined this month",
			doj:       ptr(calendar.Date(2024, time.June, 5)),
			wantStart: calendar.Date(2024, time.June, 5),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "joined after calculation date",
			doj:       ptr(calendar.Date(2024, time.June, 20)),
			wantStart: calendar.Date(2024, time.June, 1),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "slip closed previous month",
			doj:       ptr(calendar.Date(2023, time.January, 1)),
			slip:      &SalarySlip{ID: "SLIP-5", EndDate: calendar.Date(2024, time.May, 31)},
			wantStart: calendar.Date(2024, time.June, 1),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "slip inside month",
			doj:       ptr(calendar.Date(2023, time.January, 1)),
			slip:      &SalarySlip{ID: "SLIP-6", EndDate: calendar.Date(2024, time.June, 10)},
			wantStart: calendar.Date(2024, time.June, 11),
			wantRef:   ReferenceDoc{Type: ReferenceSalarySlip, Name: "SLIP-6"},
		},
		{
			name:      "joining date later than slip boundary",
			doj:       ptr(calendar.Date(2024, time.June, 8)),
			slip:      &SalarySlip{ID: "SLIP-7", EndDate: calendar.Date(2024, time.June, 3)},
			wantStart: calendar.Date(2024, time.June, 8),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "slip covers calculation date",
			doj:       ptr(calendar.Date(2023, time.January, 1)),
			slip:      &SalarySlip{ID: "SLIP-8", EndDate: calendar.Date(2024, time.June, 15)},
			wantStart: calendar.Date(2024, time.June, 1),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
		{
			name:      "no joining date",
			wantStart: calendar.Date(2024, time.June, 1),
			wantRef:   ReferenceDoc{Type: ReferenceEmployee, Name: "EMP-1"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			start, ref := PeriodStart(calcDate, "EMP-1", tc.doj, tc.slip)
			assert.True(t, tc.wantStart.Equal(start), "start %s", calendar.Format(start))
			assert.Equal(t, tc.wantRef, ref)
		})
	}
}
