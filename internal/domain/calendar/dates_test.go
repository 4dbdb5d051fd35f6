package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "january", date: Date(2024, time.January, 10), want: 31},
		{name: "leap february", date: Date(2024, time.February, 1), want: 29},
		{name: "common february", date: Date(2023, time.February, 28), want: 28},
		{name: "june", date: Date(2024, time.June, 30), want: 30},
		{name: "december", date: Date(2023, time.December, 31), want: 31},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysInMonth(tc.date))
		})
	}
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(Date(2025, 1, 10), Date(2025, 1, 10)))
	assert.Equal(t, 3, DaysInclusive(Date(2025, 1, 10), Date(2025, 1, 12)))
	assert.Equal(t, 0, DaysInclusive(Date(2025, 2, 10), Date(2025, 2, 9)))
	assert.Equal(t, 0, DaysInclusive(time.Time{}, Date(2025, 2, 9)))
	assert.Equal(t, 366, DaysInclusive(Date(2024, 1, 1), Date(2024, 12, 31)))
}

func TestIsEndOfMonth(t *testing.T) {
	assert.True(t, IsEndOfMonth(Date(2024, time.February, 29)))
	assert.False(t, IsEndOfMonth(Date(2023, time.February, 27)))
	assert.True(t, IsEndOfMonth(Date(2024, time.June, 30)))
	assert.False(t, IsEndOfMonth(Date(2024, time.June, 25)))
}

func TestAddMonthsClamped(t *testing.T) {
	assert.Equal(t, Date(2024, time.February, 29), AddMonthsClamped(Date(2024, time.January, 31), 1))
	assert.Equal(t, Date(2023, time.February, 28), AddMonthsClamped(Date(2023, time.January, 31), 1))
	assert.Equal(t, Date(2025, time.March, 15), AddMonthsClamped(Date(2023, time.December, 15), 15))
	assert.Equal(t, Date(2023, time.November, 30), AddMonthsClamped(Date(2024, time.January, 30), -2))
}

func TestParse(t *testing.T) {
	got, err := Parse("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.June, 15), got)

	got, err = Parse("2024-06-15T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.June, 15), got)

	_, err = Parse("15/06/2024")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-06-01", Format(FirstOfMonth(Date(2024, time.June, 15))))
	assert.Equal(t, "2024-06-30", Format(LastOfMonth(Date(2024, time.June, 15))))
	assert.Equal(t, "", Format(time.Time{}))
}
