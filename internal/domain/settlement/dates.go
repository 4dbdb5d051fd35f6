package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fnf/internal/domain/calendar"
	"fnf/internal/domain/employee"
)

// ResolveCalculationDate picks the settlement date: an explicit transaction date, then the
// employee's relieving date, then asOf, then today. A missing employee only skips the
// relieving date step.
func (s *Service) ResolveCalculationDate(ctx context.Context, employeeID string, transactionDate, asOf *time.Time) (time.Time, error) {
	if isSet(transactionDate) {
		return calendar.Truncate(*transactionDate), nil
	}
	if id := strings.TrimSpace(employeeID); id != "" {
		emp, err := s.Employees.GetEmployee(ctx, id)
		switch {
		case err == nil:
			if isSet(emp.RelievingDate) {
				return calendar.Truncate(*emp.RelievingDate), nil
			}
		case errors.Is(err, employee.ErrNotFound):
			// validation reports it
		default:
			return time.Time{}, fmt.Errorf("load employee %s: %w", id, err)
		}
	}
	if isSet(asOf) {
		return calendar.Truncate(*asOf), nil
	}
	return s.today(), nil
}

func isSet(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
