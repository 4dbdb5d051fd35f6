package leave

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/employee"
	"fnf/internal/domain/salary"
)

type Engine struct {
	store  Reader
	types  *EligibleTypes
	logger *zap.Logger
}

func NewEngine(store Reader, types *EligibleTypes, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if types == nil {
		types = NewEligibleTypes(store, nil, 0, logger)
	}
	return &Engine{store: store, types: types, logger: logger.Named("leave.engine")}
}

// Encash converts accrued but unused annual leave into days and an amount at the daily rate of
// monthlySalary. ErrNoAllocation and ErrZeroRate are reported in that order of precedence; callers degrade
// both to a zero result.
func (e *Engine) Encash(ctx context.Context, employeeID string, doj time.Time, asOf time.Time, monthlySalary decimal.Decimal) (Encashment, error) {
	asOf = calendar.Truncate(asOf)

	allocation, err := e.store.LeaveAllocation(ctx, employeeID, asOf)
	if err != nil {
		e.logger.Warn("leave allocation lookup failed",
			zap.String("employeeId", employeeID),
			zap.String("asOf", calendar.Format(asOf)),
			zap.Error(err))
		return Encashment{}, fmt.Errorf("%w: %v", ErrNoAllocation, err)
	}
	if len(allocation) == 0 {
		return Encashment{}, ErrNoAllocation
	}
	if !monthlySalary.IsPositive() {
		return Encashment{}, ErrZeroRate
	}
	if doj.IsZero() {
		return Encashment{}, employee.ErrNoDateOfJoining
	}

	eligible, err := e.types.Names(ctx)
	if err != nil {
		return Encashment{}, err
	}

	out := Encashment{AsOf: asOf, Rate: salary.RatePerDay(monthlySalary), Days: decimal.Zero, Breakdown: []BreakdownRow{}}
	for leaveType, details := range allocation {
		if _, ok := eligible[leaveType]; !ok {
			continue
		}
		entitlement := details.Entitlement()
		if !entitlement.IsPositive() {
			continue
		}
		accrued := AccruedDays(doj, asOf, entitlement)
		taken := details.Taken()
		net := accrued.Sub(taken)
		if !net.IsPositive() {
			continue
		}
		out.Days = out.Days.Add(net)
		out.Breakdown = append(out.Breakdown, BreakdownRow{
			LeaveType:         leaveType,
			Days:              net,
			AnnualEntitlement: entitlement,
			Accrued:           accrued,
			Taken:             taken,
		})
	}
	sort.Slice(out.Breakdown, func(i, j int) bool {
		return out.Breakdown[i].LeaveType < out.Breakdown[j].LeaveType
	})
	out.Amount = salary.Prorate(out.Days, monthlySalary)
	return out, nil
}

// Degraded is the zero result reported in place of a failed encashment.
func Degraded(asOf time.Time, ratePerDay decimal.Decimal) Encashment {
	return Encashment{
		AsOf:      calendar.Truncate(asOf),
		Rate:      ratePerDay,
		Days:      decimal.Zero,
		Amount:    decimal.Zero,
		Breakdown: []BreakdownRow{},
	}
}
