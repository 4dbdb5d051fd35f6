package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReferenceEmployee   = "Employee"
	ReferenceSalarySlip = "Salary Slip"
)

// EndOfMonthDays is the worked-day count displayed when the period ends on the last day of its month.
const EndOfMonthDays = 30

// SalarySlip is a submitted slip; only its boundary dates are used.
type SalarySlip struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	EndDate     time.Time `json:"endDate"`
	PostingDate time.Time `json:"postingDate"`
}

// ReferenceDoc names the record that determined the start of the worked period.
type ReferenceDoc struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type WorkedPeriodInput struct {
	Start         time.Time
	End           time.Time
	MonthlySalary decimal.Decimal
}

type WorkedPeriod struct {
	Start time.Time
	End   time.Time
	// ActualDays is the inclusive day count. Days is the displayed count, which the
	// end-of-month rule forces to EndOfMonthDays.
	ActualDays int
	Days       decimal.Decimal
	RatePerDay decimal.Decimal
	Amount     decimal.Decimal
	FullMonth  bool
}
