package leave

import (
	"context"
	"time"
)

type fakeReader struct {
	allocationFn func(ctx context.Context, employeeID string, date time.Time) (Allocation, error)
	hasColumnFn  func(ctx context.Context, column string) (bool, error)
	typeNamesFn  func(ctx context.Context, flag string) ([]string, error)

	typeNameCalls int
}

func (f *fakeReader) LeaveAllocation(ctx context.Context, employeeID string, date time.Time) (Allocation, error) {
	if f.allocationFn != nil {
		return f.allocationFn(ctx, employeeID, date)
	}
	return Allocation{}, nil
}

func (f *fakeReader) HasLeaveTypeColumn(ctx context.Context, column string) (bool, error) {
	if f.hasColumnFn != nil {
		return f.hasColumnFn(ctx, column)
	}
	return false, nil
}

func (f *fakeReader) LeaveTypeNames(ctx context.Context, flag string) ([]string, error) {
	f.typeNameCalls++
	if f.typeNamesFn != nil {
		return f.typeNamesFn(ctx, flag)
	}
	return nil, nil
}

// typesByFlag serves LeaveTypeNames from a fixed table.
func typesByFlag(table map[string][]string) func(ctx context.Context, flag string) ([]string, error) {
	return func(ctx context.Context, flag string) ([]string, error) {
		return table[flag], nil
	}
}
