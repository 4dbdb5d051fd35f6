package salary

import "errors"

var (
	ErrNoAssignment      = errors.New("no submitted salary structure assignment")
	ErrStructureNotFound = errors.New("salary structure not found")

	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrSyntax            = errors.New("syntax error")
)
