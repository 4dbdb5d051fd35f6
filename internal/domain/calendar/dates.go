// Package calendar holds the date arithmetic shared by the settlement pipeline.
// All values are civil dates: UTC midnight, no time-of-day component.
package calendar

import "time"

const ISODate = "2006-01-02"

// Date builds a civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day and location, keeping the calendar day as seen in t's location.
func Truncate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return Date(t.Year(), t.Month(), t.Day())
}

func FirstOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

func DaysInMonth(t time.Time) int {
	return Date(t.Year(), t.Month()+1, 0).Day()
}

func LastOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), DaysInMonth(t))
}

func IsEndOfMonth(t time.Time) bool {
	return t.Day() == DaysInMonth(t)
}

// DaysInclusive returns the inclusive day count between start and end, or 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// AddMonthsClamped adds n calendar months, clamping the day to the target month's length
// (Jan 31 + 1 month = Feb 28/29). time.AddDate would overflow into the next month instead.
func AddMonthsClamped(t time.Time, n int) time.Time {
	first := Date(t.Year(), t.Month()+time.Month(n), 1)
	day := t.Day()
	if last := DaysInMonth(first); day > last {
		day = last
	}
	return Date(first.Year(), first.Month(), day)
}

// Later returns the later of a and b.
func Later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func Earlier(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Format renders a civil date as YYYY-MM-DD, or "" for the zero time.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODate)
}

// Parse accepts RFC3339 or YYYY-MM-DD and returns the civil date.
func Parse(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return Truncate(parsed), nil
	}
	parsed, err := time.Parse(ISODate, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
