package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/employee"
	"fnf/internal/domain/leave"
	"fnf/internal/domain/payroll"
	"fnf/internal/domain/salary"
)

// Service computes settlements from read-only HR data. It keeps no state between calls.
type Service struct {
	Employees employee.Reader
	Salary    *salary.Resolver
	Slips     payroll.SlipReader
	Leave     *leave.Engine
	Logger    *zap.Logger
	// Now supplies "today" for date resolution. Defaults to time.Now.
	Now func() time.Time
}

func NewService(employees employee.Reader, resolver *salary.Resolver, slips payroll.SlipReader, engine *leave.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Employees: employees,
		Salary:    resolver,
		Slips:     slips,
		Leave:     engine,
		Logger:    logger.Named("settlement"),
		Now:       time.Now,
	}
}

func (s *Service) today() time.Time {
	if s.Now == nil {
		return calendar.Truncate(time.Now())
	}
	return calendar.Truncate(s.Now())
}

// ValidateEmployee checks that a settlement may be computed: the employee exists, has a
// relieving date and is no longer active.
func (s *Service) ValidateEmployee(ctx context.Context, employeeID string, transactionDate *time.Time) (Validation, error) {
	_, status, err := s.terminableEmployee(ctx, employeeID)
	if err != nil {
		return Validation{}, err
	}
	if !status.OK && isSet(transactionDate) {
		s.Logger.Debug("employee not terminable",
			zap.String("employeeId", employeeID),
			zap.String("transactionDate", calendar.Format(*transactionDate)),
			zap.String("code", status.Code))
	}
	return Validation{Status: status}, nil
}

func (s *Service) terminableEmployee(ctx context.Context, employeeID string) (employee.Employee, Status, error) {
	emp, status, err := s.lookupEmployee(ctx, employeeID)
	if err != nil || !status.OK {
		return emp, status, err
	}
	if f := failureFor(employee.CheckTerminable(emp), time.Time{}); f != nil {
		return emp, failed(f), nil
	}
	return emp, succeeded(), nil
}

func (s *Service) lookupEmployee(ctx context.Context, employeeID string) (employee.Employee, Status, error) {
	id := strings.TrimSpace(employeeID)
	if id == "" {
		return employee.Employee{}, failed(errEmployeeRequired), nil
	}
	emp, err := s.Employees.GetEmployee(ctx, id)
	if err != nil {
		if f := failureFor(err, time.Time{}); f != nil {
			return employee.Employee{}, failed(f), nil
		}
		return employee.Employee{}, Status{}, fmt.Errorf("load employee %s: %w", id, err)
	}
	return emp, succeeded(), nil
}

// PayrollContext reports the monthly salary, daily rate and worked-day pay for
// [periodFrom, periodTo], defaulting to the calculation month up to the calculation date.
func (s *Service) PayrollContext(ctx context.Context, employeeID string, transactionDate, periodFrom, periodTo *time.Time) (PayrollContext, error) {
	id := strings.TrimSpace(employeeID)
	if id == "" {
		return PayrollContext{Status: failed(errEmployeeRequired)}, nil
	}
	calcDate, err := s.ResolveCalculationDate(ctx, id, transactionDate, nil)
	if err != nil {
		return PayrollContext{}, err
	}
	start := calendar.FirstOfMonth(calcDate)
	if isSet(periodFrom) {
		start = calendar.Truncate(*periodFrom)
	}
	end := calcDate
	if isSet(periodTo) {
		end = calendar.Truncate(*periodTo)
	}
	return s.payrollContext(ctx, id, calcDate, start, end)
}

func (s *Service) payrollContext(ctx context.Context, employeeID string, calcDate, start, end time.Time) (PayrollContext, error) {
	pc := PayrollContext{
		MonthlySalary:    decimal.Zero,
		RatePerDay:       decimal.Zero,
		WorkedDays:       decimal.Zero,
		CalculatedAmount: decimal.Zero,
		PeriodFrom:       calendar.Format(start),
		PeriodTo:         calendar.Format(end),
	}

	res, err := s.Salary.MonthlySalary(ctx, employeeID, calcDate)
	if err != nil {
		if f := failureFor(err, calcDate); f != nil {
			pc.Status = failed(f)
			return pc, nil
		}
		return PayrollContext{}, err
	}
	if len(res.FailedFormulas) > 0 {
		s.Logger.Warn("salary structure formulas contributed zero",
			zap.String("employeeId", employeeID),
			zap.String("salaryStructure", res.Assignment.SalaryStructure),
			zap.Strings("components", res.FailedFormulas))
	}

	wp := payroll.ComputeWorkedPeriod(payroll.WorkedPeriodInput{Start: start, End: end, MonthlySalary: res.Monthly})
	assignment := res.Assignment.ID

	pc.Status = succeeded()
	pc.MonthlySalary = res.Monthly
	pc.RatePerDay = wp.RatePerDay
	pc.WorkedDays = wp.Days
	pc.CalculatedAmount = wp.Amount
	pc.SalaryStructureAssignment = &assignment
	pc.SalarySource = res.Source
	return pc, nil
}

// EmployeeInfo reports the service duration as of asOf, or today.
func (s *Service) EmployeeInfo(ctx context.Context, employeeID string, asOf *time.Time) (EmployeeService, error) {
	end := s.today()
	if isSet(asOf) {
		end = calendar.Truncate(*asOf)
	}
	emp, status, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeService{}, err
	}
	if !status.OK {
		return EmployeeService{Status: status}, nil
	}
	return employeeService(emp, end), nil
}

func employeeService(emp employee.Employee, asOf time.Time) EmployeeService {
	if !isSet(emp.DateOfJoining) {
		return EmployeeService{Status: failed(failureFor(employee.ErrNoDateOfJoining, asOf))}
	}
	doj := calendar.Truncate(*emp.DateOfJoining)
	d := ComputeServiceDuration(doj, asOf)
	return EmployeeService{
		Status:            succeeded(),
		Years:             d.Years,
		Months:            d.Months,
		Days:              d.Days,
		TotalYearsDecimal: d.YearsDecimal,
		DateOfJoining:     calendar.Format(doj),
		AsOfDate:          calendar.Format(asOf),
	}
}

// LeaveEncashment values accrued unused annual leave as of asOf, or the calculation date.
func (s *Service) LeaveEncashment(ctx context.Context, employeeID string, asOf *time.Time) (LeaveResult, error) {
	emp, status, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return LeaveResult{}, err
	}
	if !status.OK {
		return LeaveResult{Status: status}, nil
	}

	var date time.Time
	if isSet(asOf) {
		date = calendar.Truncate(*asOf)
	} else if date, err = s.ResolveCalculationDate(ctx, emp.ID, nil, nil); err != nil {
		return LeaveResult{}, err
	}

	monthly := decimal.Zero
	res, err := s.Salary.MonthlySalary(ctx, emp.ID, date)
	switch {
	case err == nil:
		monthly = res.Monthly
	case errors.Is(err, salary.ErrNoAssignment):
		// encash reports the zero rate
	default:
		return LeaveResult{}, err
	}

	enc, f, err := s.encash(ctx, emp, date, monthly)
	if err != nil {
		return LeaveResult{}, err
	}
	if f != nil {
		return LeaveResult{
			Status:    failed(f),
			AsOfDate:  calendar.Format(date),
			Rate:      salary.RatePerDay(monthly),
			Days:      decimal.Zero,
			Amount:    decimal.Zero,
			Breakdown: []leave.BreakdownRow{},
		}, nil
	}
	return leaveResult(enc), nil
}

// encash separates business failures, which callers degrade, from store errors.
func (s *Service) encash(ctx context.Context, emp employee.Employee, date time.Time, monthly decimal.Decimal) (leave.Encashment, *Failure, error) {
	var doj time.Time
	if isSet(emp.DateOfJoining) {
		doj = *emp.DateOfJoining
	}
	enc, err := s.Leave.Encash(ctx, emp.ID, doj, date, monthly)
	if err != nil {
		if f := failureFor(err, date); f != nil {
			return leave.Encashment{}, f, nil
		}
		return leave.Encashment{}, nil, fmt.Errorf("leave encashment: %w", err)
	}
	return enc, nil, nil
}

func leaveResult(enc leave.Encashment) LeaveResult {
	return LeaveResult{
		Status:    succeeded(),
		AsOfDate:  calendar.Format(enc.AsOf),
		Rate:      enc.Rate,
		Days:      enc.Days,
		Amount:    enc.Amount,
		Breakdown: enc.Breakdown,
	}
}

// FullAndFinal assembles the settlement. Validation, the joining date and the salary
// assignment are terminal; leave encashment failures zero the leave section and set Note.
func (s *Service) FullAndFinal(ctx context.Context, employeeID string, transactionDate *time.Time) (Payload, error) {
	id := strings.TrimSpace(employeeID)
	if id == "" {
		return Payload{Status: failed(errEmployeeRequired)}, nil
	}
	calcDate, err := s.ResolveCalculationDate(ctx, id, transactionDate, nil)
	if err != nil {
		return Payload{}, err
	}

	emp, status, err := s.terminableEmployee(ctx, id)
	if err != nil {
		return Payload{}, err
	}
	if !status.OK {
		return Payload{Status: status}, nil
	}

	svc := employeeService(emp, calcDate)
	if !svc.OK {
		return Payload{Status: svc.Status}, nil
	}

	var lastSlip *payroll.SalarySlip
	slip, err := s.Slips.LastSubmittedSlip(ctx, emp.ID)
	switch {
	case err == nil:
		lastSlip = &slip
	case errors.Is(err, payroll.ErrSlipNotFound):
		// first settlement period
	default:
		return Payload{}, fmt.Errorf("load last salary slip: %w", err)
	}

	start, ref := payroll.PeriodStart(calcDate, emp.ID, emp.DateOfJoining, lastSlip)
	pc, err := s.payrollContext(ctx, emp.ID, calcDate, start, calcDate)
	if err != nil {
		return Payload{}, err
	}
	if !pc.OK {
		return Payload{Status: pc.Status}, nil
	}

	var note string
	enc, f, err := s.encash(ctx, emp, calcDate, pc.MonthlySalary)
	if err != nil {
		return Payload{}, err
	}
	if f != nil {
		s.Logger.Warn("leave encashment degraded",
			zap.String("employeeId", emp.ID),
			zap.String("code", f.Code),
			zap.String("reason", f.Message))
		note = f.Message
		enc = leave.Degraded(calcDate, pc.RatePerDay)
	}
	lr := leaveResult(enc)

	payables := []Payable{
		{
			Component:             ComponentWorkedDay,
			DayCount:              pc.WorkedDays,
			Amount:                pc.CalculatedAmount,
			ReferenceDocumentType: ref.Type,
			ReferenceDocument:     ref.Name,
			WorkedDays:            pc.WorkedDays,
			RatePerDay:            pc.RatePerDay,
			AutoAmount:            pc.CalculatedAmount,
		},
		{
			Component:             ComponentLeaveEncashment,
			DayCount:              lr.Days,
			Amount:                lr.Amount,
			ReferenceDocumentType: ReferenceLeaveType,
			ReferenceDocument:     enc.Reference(),
			WorkedDays:            lr.Days,
			RatePerDay:            lr.Rate,
			AutoAmount:            lr.Amount,
		},
	}
	total := decimal.Zero
	for _, row := range payables {
		total = total.Add(row.Amount)
	}

	s.Logger.Info("full and final assembled",
		zap.String("employeeId", emp.ID),
		zap.String("asOf", calendar.Format(calcDate)),
		zap.String("totalPayable", total.String()),
		zap.Bool("leaveDegraded", f != nil))

	return Payload{
		Status:     succeeded(),
		EmployeeID: emp.ID,
		AsOfDate:   calendar.Format(calcDate),
		Service: &ServiceSummary{
			Years:              svc.Years,
			Months:             svc.Months,
			Days:               svc.Days,
			CustomTotalOfYears: svc.TotalYearsDecimal,
		},
		Payroll:         &pc,
		LeaveEncashment: &lr,
		Payables:        payables,
		Totals: &Totals{
			LeaveEncashmentAmount: lr.Amount,
			TotalPayable:          total,
		},
		Note: note,
	}, nil
}
