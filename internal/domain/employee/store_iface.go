package employee

import "context"

// Reader returns ErrNotFound when no employee matches id.
type Reader interface {
	GetEmployee(ctx context.Context, id string) (Employee, error)
}
