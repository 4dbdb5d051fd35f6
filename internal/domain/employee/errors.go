package employee

import "errors"

var (
	ErrNotFound             = errors.New("employee not found")
	ErrRelievingDateMissing = errors.New("employee relieving date is missing")
	ErrStillActive          = errors.New("employee is still active")
	ErrNoDateOfJoining      = errors.New("employee has no date of joining")
)
