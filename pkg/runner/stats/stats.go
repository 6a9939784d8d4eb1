// Package stats provides the summary runners: overall completion, per-day
// reports and the month calendar.
package stats

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Stats prints completion across the whole daybook.
type Stats struct {
	JSON bool
	Out  io.Writer

	Service *app.Service
}

func (n *Stats) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no daybook")
	}
	s := n.Service.Stats()
	if n.JSON {
		return printers.JSON(n.Out, s)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Stats(s)
	return nil
}

// Report prints per-day completion between Since and Until.
type Report struct {
	Since string
	Until string
	JSON  bool
	Out   io.Writer

	Service *app.Service
}

func (n *Report) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no daybook")
	}
	r := n.Service.Report(n.Since, n.Until)
	if n.JSON {
		return printers.JSON(n.Out, r)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Report(r)
	return nil
}

// Month prints a calendar of the month containing On, highlighting days
// with items. Long lists each day's items instead of a grid.
type Month struct {
	On     time.Time
	Months int
	Long   bool
	Out    io.Writer

	Service *app.Service
}

func (n *Month) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show month, no daybook")
	}
	on := n.On
	if on.IsZero() {
		on = time.Now()
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	c := n.Service.Snapshot()
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	for i := 0; i < months; i++ {
		if n.Long {
			pp.MonthLong(on, c)
			pp.NewLine()
		} else {
			pp.Month(on, c)
		}
		on = printers.NextMonth(on)
	}
	return nil
}
