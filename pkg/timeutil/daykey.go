package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// LayoutDayKey is the canonical, zero-padded day key layout. Keys in this
// layout sort lexicographically in chronological order.
const LayoutDayKey = "2006-01-02"

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayKey formats the calendar day of t, in t's own location.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// IsDayKey reports whether s has the YYYY-MM-DD shape. It does not check that
// the date exists; use ParseDayKey for that.
func IsDayKey(s string) bool {
	return dayKeyPattern.MatchString(s)
}

// ParseDayKey parses a canonical day key into midnight local time.
func ParseDayKey(s string) (time.Time, error) {
	if !IsDayKey(s) {
		return time.Time{}, fmt.Errorf("timeutil: %q is not a YYYY-MM-DD day key", s)
	}
	t, err := time.ParseInLocation(LayoutDayKey, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: %q is not a calendar date: %w", s, err)
	}
	return t, nil
}

// Today returns the day key for the current local date.
func Today() string {
	return DayKey(time.Now())
}

// AddDays shifts a day key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}
