package salary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Resolver struct {
	store  Reader
	logger *zap.Logger
}

func NewResolver(store Reader, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, logger: logger}
}

// MonthlySalary resolves the monthly salary in effect on asOf. Earnings come from the
// assignment's structure; when they sum to zero, or the structure cannot be loaded, the
// assignment's custom_total and then base are used.
func (r *Resolver) MonthlySalary(ctx context.Context, employeeID string, asOf time.Time) (Resolution, error) {
	assignment, err := r.store.ActiveAssignment(ctx, employeeID, asOf)
	if err != nil {
		if errors.Is(err, ErrNoAssignment) {
			return Resolution{}, ErrNoAssignment
		}
		return Resolution{}, fmt.Errorf("load salary structure assignment: %w", err)
	}

	res := Resolution{Assignment: assignment}
	if name := strings.TrimSpace(assignment.SalaryStructure); name != "" {
		structure, err := r.store.Structure(ctx, name)
		switch {
		case err == nil:
			total, failed := r.sumEarnings(structure, assignment)
			res.FailedFormulas = failed
			if !total.IsZero() {
				res.Monthly = total
				res.Source = SourceStructure
				return res, nil
			}
		case errors.Is(err, ErrStructureNotFound):
			r.logger.Warn("salary structure not found, using assignment fallback",
				zap.String("employeeId", employeeID),
				zap.String("salaryStructure", name))
		default:
			return Resolution{}, fmt.Errorf("load salary structure %q: %w", name, err)
		}
	}

	switch {
	case !assignment.CustomTotal.IsZero():
		res.Monthly = assignment.CustomTotal
		res.Source = SourceCustomTotal
	case !assignment.Base.IsZero():
		res.Monthly = assignment.Base
		res.Source = SourceBase
	default:
		res.Monthly = decimal.Zero
		res.Source = SourceNone
	}
	return res, nil
}

func (r *Resolver) sumEarnings(structure Structure, assignment Assignment) (decimal.Decimal, []string) {
	vars := assignment.FormulaVars()
	total := decimal.Zero
	var failed []string
	for _, row := range structure.Earnings {
		if !row.Amount.IsZero() {
			total = total.Add(row.Amount)
			continue
		}
		formula := strings.TrimSpace(row.Formula)
		if formula == "" {
			continue
		}
		value, err := Evaluate(formula, vars)
		if err != nil {
			r.logger.Debug("earning formula did not evaluate",
				zap.String("salaryStructure", structure.Name),
				zap.String("component", row.Component),
				zap.String("formula", formula),
				zap.Error(err))
			failed = append(failed, row.Component)
			continue
		}
		total = total.Add(value)
	}
	return total, failed
}
