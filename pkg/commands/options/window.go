package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/timeutil"
)

// WindowOptions selects a span of days ending on a given day.
type WindowOptions struct {
	Last  string
	Until OnOptions
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		`How far back to look, for example 3d, 1w or 1w2d.`)
	cmd.Flags().StringVar(&o.Until.OnString, "until", "",
		`Last day of the window, defaults to today.`)
}

// Range returns the first and last day keys of the window, and its label.
func (o *WindowOptions) Range() (since, until, label string, err error) {
	days, label, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return "", "", "", err
	}
	end, err := ParseDay(o.Until.OnString, time.Now())
	if err != nil {
		return "", "", "", fmt.Errorf("--until: %w", err)
	}
	if end.IsZero() {
		end = time.Now()
	}
	until = timeutil.DayKey(end)
	since, err = timeutil.AddDays(until, 1-days)
	if err != nil {
		return "", "", "", err
	}
	return since, until, label, nil
}
