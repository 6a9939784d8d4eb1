package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions, usage string) {
	cmd.Flags().StringVar(&o.OnString, "on", "", usage+
		` Accepts 2024-2-28, 2/28, today, tomorrow or yesterday.`)
}

// GetOn returns the chosen day, or the zero time when none was given.
func (o *OnOptions) GetOn() (time.Time, error) {
	return ParseDay(o.OnString, time.Now())
}

// GetDayKey returns the chosen day as a day key, defaulting to today.
func (o *OnOptions) GetDayKey() (string, error) {
	t, err := o.GetOn()
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		return timeutil.Today(), nil
	}
	return timeutil.DayKey(t), nil
}

// ParseDay reads a day relative to now. An empty string is the zero time.
func ParseDay(raw string, now time.Time) (time.Time, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	switch raw {
	case "":
		return time.Time{}, nil
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(layoutISO, raw, time.Local)
	if err == nil {
		return t, nil
	}
	// Let the year be the same.
	t, err = time.ParseInLocation(layoutISOShort, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized day %q", raw)
	}
	t = t.AddDate(now.Year(), 0, 0)
	// 1/3 said on 12/5 means next January, not eleven months ago.
	if t.Before(today) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}
