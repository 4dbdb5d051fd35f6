package payroll

import "context"

type SlipReader interface {
	// LastSubmittedSlip returns the latest submitted slip by end date, then posting date,
	// or ErrSlipNotFound.
	LastSubmittedSlip(ctx context.Context, employeeID string) (SalarySlip, error)
}
