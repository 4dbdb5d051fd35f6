package leave

import "errors"

var (
	ErrNoAllocation = errors.New("no leave allocation data")
	ErrZeroRate     = errors.New("rate per day is zero")
)
