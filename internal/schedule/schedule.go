// Package schedule holds the one canonical calendar representation used at
// every boundary: dates are "YYYY-MM-DD" strings, times of day are 24-hour
// "HH:MM" strings, both interpreted as local wall-clock values.
package schedule

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate validates a YYYY-MM-DD calendar date. Impossible dates
// (2025-02-30) are errors, not silently normalized.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: want YYYY-MM-DD", s)
	}
	if d.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("bad date %q: not a calendar date", s)
	}
	return d, nil
}

// ParseTime validates a 24-hour HH:MM time of day.
func ParseTime(s string) (hour, minute int, err error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil || t.Format(TimeLayout) != s {
		return 0, 0, fmt.Errorf("bad time %q: want HH:MM (24h)", s)
	}
	return t.Hour(), t.Minute(), nil
}

// StartOf returns the instant a session starts: the given calendar date at
// the given time of day, local wall clock.
func StartOf(date, tod string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseTime(tod)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.Local), nil
}

// FormatDate renders an instant as its local calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay compares by local calendar date components only; time of day and
// offsets never leak into the comparison.
func SameDay(date string, t time.Time) bool {
	return date == t.Format(DateLayout)
}
