package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerMonth is the fixed divisor used for the daily rate, regardless of the actual month length.
const DaysPerMonth = 30

const (
	SourceStructure   = "structure"
	SourceCustomTotal = "custom_total"
	SourceBase        = "base"
	SourceNone        = "none"
)

// Assignment binds an employee to a salary structure from FromDate on.
type Assignment struct {
	ID              string
	EmployeeID      string
	FromDate        time.Time
	Submitted       bool
	SalaryStructure string
	Base            decimal.Decimal
	Variable        decimal.Decimal
	CustomTotal     decimal.Decimal
	// NumericFields holds the custom numeric fields declared on the assignment schema.
	NumericFields map[string]decimal.Decimal
}

// FormulaVars is the evaluation context for earning formulas. Declared fields win over custom
// fields of the same name.
func (a Assignment) FormulaVars() map[string]decimal.Decimal {
	vars := make(map[string]decimal.Decimal, len(a.NumericFields)+3)
	for name, value := range a.NumericFields {
		vars[name] = value
	}
	vars["base"] = a.Base
	vars["variable"] = a.Variable
	vars["custom_total"] = a.CustomTotal
	return vars
}

type Earning struct {
	Component string
	Amount    decimal.Decimal
	Formula   string
}

type Structure struct {
	Name     string
	Earnings []Earning
}

// Resolution is the monthly salary in effect on a date and how it was derived.
type Resolution struct {
	Assignment Assignment
	Monthly    decimal.Decimal
	Source     string
	// FailedFormulas lists earning components whose formula contributed 0 because it did not evaluate.
	FailedFormulas []string
}

func (r Resolution) RatePerDay() decimal.Decimal {
	return RatePerDay(r.Monthly)
}

func RatePerDay(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Div(decimal.NewFromInt(DaysPerMonth))
}

// Prorate pays days at the daily rate of monthly. The product is taken before the division so
// whole-day amounts stay exact.
func Prorate(days, monthly decimal.Decimal) decimal.Decimal {
	return days.Mul(monthly).Div(decimal.NewFromInt(DaysPerMonth))
}
