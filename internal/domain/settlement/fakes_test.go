package settlement

import (
	"context"
	"time"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/employee"
	"fnf/internal/domain/leave"
	"fnf/internal/domain/payroll"
	"fnf/internal/domain/salary"
)

type fakeEmployees struct {
	employees map[string]employee.Employee
	err       error
}

func (f *fakeEmployees) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return emp, nil
}

type fakeSalary struct {
	assignments map[string]salary.Assignment
	structures  map[string]salary.Structure
	err         error
}

func (f *fakeSalary) ActiveAssignment(ctx context.Context, employeeID string, asOf time.Time) (salary.Assignment, error) {
	if f.err != nil {
		return salary.Assignment{}, f.err
	}
	a, ok := f.assignments[employeeID]
	if !ok || a.FromDate.After(asOf) {
		return salary.Assignment{}, salary.ErrNoAssignment
	}
	return a, nil
}

func (f *fakeSalary) Structure(ctx context.Context, name string) (salary.Structure, error) {
	s, ok := f.structures[name]
	if !ok {
		return salary.Structure{}, salary.ErrStructureNotFound
	}
	return s, nil
}

type fakeSlips struct {
	slips map[string]payroll.SalarySlip
	err   error
}

func (f *fakeSlips) LastSubmittedSlip(ctx context.Context, employeeID string) (payroll.SalarySlip, error) {
	if f.err != nil {
		return payroll.SalarySlip{}, f.err
	}
	slip, ok := f.slips[employeeID]
	if !ok {
		return payroll.SalarySlip{}, payroll.ErrSlipNotFound
	}
	return slip, nil
}

type fakeLeave struct {
	allocations map[string]leave.Allocation
	hasAnnual   bool
	byFlag      map[string][]string
	typesErr    error
}

func (f *fakeLeave) LeaveAllocation(ctx context.Context, employeeID string, date time.Time) (leave.Allocation, error) {
	return f.allocations[employeeID], nil
}

func (f *fakeLeave) HasLeaveTypeColumn(ctx context.Context, column string) (bool, error) {
	if f.typesErr != nil {
		return false, f.typesErr
	}
	return f.hasAnnual, nil
}

func (f *fakeLeave) LeaveTypeNames(ctx context.Context, flag string) ([]string, error) {
	return f.byFlag[flag], nil
}

type fixture struct {
	employees *fakeEmployees
	salary    *fakeSalary
	slips     *fakeSlips
	leave     *fakeLeave
	today     time.Time
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := calendar.Date(y, m, d)
	return &t
}

// newFixture is a Left employee who joined 2023-01-01 and was relieved 2024-06-15, on a flat
// 3000 monthly salary with 21 days of annual leave of which 2 were taken.
func newFixture() *fixture {
	return &fixture{
		employees: &fakeEmployees{employees: map[string]employee.Employee{
			"EMP-1": {
				ID:            "EMP-1",
				Status:        "Left",
				DateOfJoining: datePtr(2023, time.January, 1),
				RelievingDate: datePtr(2024, time.June, 15),
			},
		}},
		salary: &fakeSalary{assignments: map[string]salary.Assignment{
			"EMP-1": {
				ID:         "SSA-1",
				EmployeeID: "EMP-1",
				FromDate:   calendar.Date(2023, time.January, 1),
				Submitted:  true,
				Base:       dec("3000"),
			},
		}},
		slips: &fakeSlips{},
		leave: &fakeLeave{
			allocations: map[string]leave.Allocation{
				"EMP-1": {"Annual Leave": {"total_leaves": 21.0, "leaves_taken": 2.0}},
			},
			byFlag: map[string][]string{leave.FlagAllowEncashment: {"Annual Leave"}},
		},
		today: calendar.Date(2024, time.September, 1),
	}
}

func (f *fixture) service() *Service {
	svc := NewService(
		f.employees,
		salary.NewResolver(f.salary, nil),
		f.slips,
		leave.NewEngine(f.leave, nil, nil),
		nil,
	)
	svc.Now = func() time.Time { return f.today }
	return svc
}

func (f *fixture) updateEmployee(id string, mutate func(*employee.Employee)) {
	emp := f.employees.employees[id]
	mutate(&emp)
	f.employees.employees[id] = emp
}
