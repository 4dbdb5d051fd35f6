package settlement

import (
	"errors"
	"fmt"
	"time"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/employee"
	"fnf/internal/domain/leave"
	"fnf/internal/domain/salary"
)

const (
	CodeEmployeeRequired     = "employee_required"
	CodeEmployeeNotFound     = "employee_not_found"
	CodeRelievingDateMissing = "relieving_date_missing"
	CodeEmployeeActive       = "employee_active"
	CodeNoDateOfJoining      = "no_date_of_joining"
	CodeNoSalaryAssignment   = "no_salary_assignment"
	CodeNoLeaveAllocation    = "no_leave_allocation"
	CodeZeroRate             = "zero_rate"
)

// Failure is a business outcome reported to the caller as ok=false or as a note.
type Failure struct {
	Code    string
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

var errEmployeeRequired = &Failure{Code: CodeEmployeeRequired, Message: "Employee is required"}

// failureFor maps a domain sentinel to its Failure. asOf is used by messages that name the
// date. Errors that are not business outcomes yield nil.
func failureFor(err error, asOf time.Time) *Failure {
	var f *Failure
	switch {
	case err == nil:
		return nil
	case errors.As(err, &f):
		return f
	case errors.Is(err, employee.ErrNotFound):
		return &Failure{Code: CodeEmployeeNotFound, Message: "Employee not found"}
	case errors.Is(err, employee.ErrRelievingDateMissing):
		return &Failure{Code: CodeRelievingDateMissing, Message: "Relieving Date is missing"}
	case errors.Is(err, employee.ErrStillActive):
		return &Failure{Code: CodeEmployeeActive, Message: "Employee is still Active. Please set Status to Left and try again."}
	case errors.Is(err, employee.ErrNoDateOfJoining):
		return &Failure{Code: CodeNoDateOfJoining, Message: "Employee has no Date of Joining"}
	case errors.Is(err, salary.ErrNoAssignment):
		return &Failure{Code: CodeNoSalaryAssignment, Message: "No Salary Structure Assignment found (Submitted)."}
	case errors.Is(err, leave.ErrNoAllocation):
		return &Failure{Code: CodeNoLeaveAllocation, Message: fmt.Sprintf("No leave allocation data returned as of %s.", calendar.Format(asOf))}
	case errors.Is(err, leave.ErrZeroRate):
		return &Failure{Code: CodeZeroRate, Message: "Rate per day is 0. Check Salary Structure Assignment / Salary Structure earnings."}
	default:
		return nil
	}
}
