package salary

import (
	"context"
	"time"
)

type Reader interface {
	// ActiveAssignment returns the submitted assignment with the latest from date on or before
	// asOf, or ErrNoAssignment.
	ActiveAssignment(ctx context.Context, employeeID string, asOf time.Time) (Assignment, error)
	// Structure returns the structure with its earnings in row order, or ErrStructureNotFound.
	Structure(ctx context.Context, name string) (Structure, error)
}
