// Package migrate provides the runner that carries pending items forward.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Migrate moves pending items onto To. With From set only that day is
// migrated; otherwise every day before To with pending items is.
type Migrate struct {
	From   string
	To     string
	DryRun bool
	ShowID bool
	JSON   bool
	Out    io.Writer

	Service *app.Service
}

// Result lists what moved, by source day.
type Result struct {
	To    string              `json:"to"`
	Moved map[string][]string `json:"moved"`
}

func (n *Migrate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not migrate, no daybook")
	}
	if n.To == "" {
		n.To = timeutil.Today()
	}

	candidates := n.candidates()
	if n.DryRun {
		if n.JSON {
			return printers.JSON(n.Out, candidates)
		}
		pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
		pp.NewLine()
		pp.TitleWithCount("to migrate to "+n.To, len(candidates))
		pp.Items(candidates...)
		return nil
	}

	res := Result{To: n.To, Moved: map[string][]string{}}
	for _, day := range sourceDays(candidates) {
		ids, err := n.Service.MigratePending(ctx, day, n.To)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			res.Moved[day] = ids
		}
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}

	w := n.Out
	if w == nil {
		w = color.Output
	}
	for _, day := range sourceDays(candidates) {
		_, _ = fmt.Fprintf(w, "%s > %s: %d item(s)\n", day, n.To, len(res.Moved[day]))
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	items := n.Service.ItemsOnDay(n.To)
	pp.TitleWithCount(n.To, len(items))
	pp.Items(items...)
	return nil
}

func (n *Migrate) candidates() []item.Item {
	if n.From == "" {
		return n.Service.MigrationCandidates(n.To)
	}
	var out []item.Item
	for _, it := range n.Service.ItemsOnDay(n.From) {
		if !it.Completed {
			out = append(out, it)
		}
	}
	return out
}

// sourceDays returns the distinct days of items, which arrive in day order.
func sourceDays(items []item.Item) []string {
	var days []string
	for _, it := range items {
		if len(days) == 0 || days[len(days)-1] != it.DayKey {
			days = append(days, it.DayKey)
		}
	}
	return days
}
