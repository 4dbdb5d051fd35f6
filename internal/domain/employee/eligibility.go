package employee

// CheckTerminable reports why a settlement cannot be computed for emp, or nil when it can.
// The relieving date is checked before the status.
func CheckTerminable(emp Employee) error {
	if emp.RelievingDate == nil || emp.RelievingDate.IsZero() {
		return ErrRelievingDateMissing
	}
	if emp.IsActive() {
		return ErrStillActive
	}
	return nil
}
