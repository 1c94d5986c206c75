package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay drops the time component. Ledger dates are calendar days.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func SameDay(t1, t2 time.Time) bool {
	return t1.Format(layout) == t2.Format(layout)
}

// MonthsElapsed counts whole calendar months between two dates, so a
// curve starting 2024-01-15 reaches 12 months on 2025-01-15.
func MonthsElapsed(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}

// MonthKey buckets a date into its calendar month.
func MonthKey(t time.Time) (int, int) {
	return t.Year(), int(t.Month())
}
