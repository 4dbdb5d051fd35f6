package shared

import (
	"strings"
	"time"

	"fnf/internal/domain/calendar"
)

// OptionalDate parses a YYYY-MM-DD query value. Blank input yields nil.
func OptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := calendar.Parse(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
