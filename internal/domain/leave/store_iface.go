package leave

import (
	"context"
	"time"
)

type Reader interface {
	// LeaveAllocation returns the per-type allocation records as of date. An empty result is
	// not an error.
	LeaveAllocation(ctx context.Context, employeeID string, date time.Time) (Allocation, error)
	HasLeaveTypeColumn(ctx context.Context, column string) (bool, error)
	// LeaveTypeNames lists leave types whose boolean flag column is set.
	LeaveTypeNames(ctx context.Context, flag string) ([]string, error)
}
