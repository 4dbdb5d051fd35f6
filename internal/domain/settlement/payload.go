package settlement

import (
	"github.com/shopspring/decimal"

	"fnf/internal/domain/leave"
)

const (
	ComponentWorkedDay       = "Worked Day"
	ComponentLeaveEncashment = "Leave Encashment"
	ReferenceLeaveType       = "Leave Type"
)

// Status is the ok/msg pair carried by every operation result. Code identifies the failure.
type Status struct {
	OK   bool   `json:"ok"`
	Msg  string `json:"msg"`
	Code string `json:"code,omitempty"`
}

func succeeded() Status {
	return Status{OK: true}
}

func failed(f *Failure) Status {
	return Status{OK: false, Msg: f.Message, Code: f.Code}
}

// Failure returns the failure behind a non-ok status, or nil.
func (s Status) Failure() *Failure {
	if s.OK {
		return nil
	}
	return &Failure{Code: s.Code, Message: s.Msg}
}

type Validation struct {
	Status
}

type PayrollContext struct {
	Status
	MonthlySalary             decimal.Decimal `json:"monthly_salary"`
	RatePerDay                decimal.Decimal `json:"rate_per_day"`
	WorkedDays                decimal.Decimal `json:"worked_days"`
	CalculatedAmount          decimal.Decimal `json:"calculated_amount"`
	SalaryStructureAssignment *string         `json:"salary_structure_assignment"`
	SalarySource              string          `json:"salary_source,omitempty"`
	PeriodFrom                string          `json:"period_from,omitempty"`
	PeriodTo                  string          `json:"period_to,omitempty"`
}

type EmployeeService struct {
	Status
	Years             int             `json:"years"`
	Months            int             `json:"months"`
	Days              int             `json:"days"`
	TotalYearsDecimal decimal.Decimal `json:"total_years_decimal"`
	DateOfJoining     string          `json:"date_of_joining,omitempty"`
	AsOfDate          string          `json:"as_of_date,omitempty"`
}

type LeaveResult struct {
	Status
	AsOfDate  string               `json:"as_of_date,omitempty"`
	Rate      decimal.Decimal      `json:"rate"`
	Days      decimal.Decimal      `json:"days"`
	Amount    decimal.Decimal      `json:"amount"`
	Breakdown []leave.BreakdownRow `json:"breakdown"`
}

type ServiceSummary struct {
	Years              int             `json:"years"`
	Months             int             `json:"months"`
	Days               int             `json:"days"`
	CustomTotalOfYears decimal.Decimal `json:"custom_total_of_years"`
}

// Payable is one row of the settlement's payables table.
type Payable struct {
	Component             string          `json:"component"`
	DayCount              decimal.Decimal `json:"day_count"`
	Amount                decimal.Decimal `json:"amount"`
	ReferenceDocumentType string          `json:"reference_document_type"`
	ReferenceDocument     string          `json:"reference_document"`
	WorkedDays            decimal.Decimal `json:"worked_days"`
	RatePerDay            decimal.Decimal `json:"rate_per_day"`
	AutoAmount            decimal.Decimal `json:"auto_amount"`
}

type Totals struct {
	LeaveEncashmentAmount decimal.Decimal `json:"leave_encashment_amount"`
	TotalPayable          decimal.Decimal `json:"total_payable"`
}

// Payload is the assembled Full and Final settlement. On failure only Status is set.
type Payload struct {
	Status
	EmployeeID      string          `json:"employee,omitempty"`
	AsOfDate        string          `json:"as_of_date,omitempty"`
	Service         *ServiceSummary `json:"service,omitempty"`
	Payroll         *PayrollContext `json:"payroll,omitempty"`
	LeaveEncashment *LeaveResult    `json:"leave_encashment,omitempty"`
	Payables        []Payable       `json:"payables,omitempty"`
	Totals          *Totals         `json:"totals,omitempty"`
	Note            string          `json:"note,omitempty"`
}
