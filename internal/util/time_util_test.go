package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthsElapsed(t *testing.T) {
	for _, tc := range []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"same day", "2024-01-15", "2024-01-15", 0},
		{"one day short of a month", "2024-01-15", "2024-02-14", 0},
		{"exactly one month", "2024-01-15", "2024-02-15", 1},
		{"one day short of a year", "2024-01-15", "2025-01-14", 11},
		{"exactly a year", "2024-01-15", "2025-01-15", 12},
		{"end before start", "2024-06-01", "2024-01-01", 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tc.start)
			require.NoError(t, err)
			end, err := time.Parse("2006-01-02", tc.end)
			require.NoError(t, err)
			require.Equal(t, tc.expected, MonthsElapsed(start, end))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, 7, 3, 14, 35, 12, 999, time.UTC)
	require.Equal(t, NewDate(2024, 7, 3), TruncateToDay(in))
}
