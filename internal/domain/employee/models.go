package employee

import (
	"strings"
	"time"
)

const StatusActive = "active"

// Employee is the read model of the HR master record used by settlements.
type Employee struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	RelievingDate *time.Time `json:"relievingDate,omitempty"`
}

// IsActive compares the status case-insensitively, ignoring surrounding whitespace.
func (e Employee) IsActive() bool {
	return strings.ToLower(strings.TrimSpace(e.Status)) == StatusActive
}
