// Package complete provides the runner for changing the completion of items.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/printers"
)

// Complete sets the completion flag of IDs. With Completed nil, the single
// id given is toggled instead.
type Complete struct {
	IDs       []string
	Completed *bool
	JSON      bool
	Out       io.Writer

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no daybook")
	}
	if len(n.IDs) == 0 {
		return errors.New("can not complete, no item id")
	}

	if n.Completed == nil {
		if len(n.IDs) > 1 {
			return errors.New("toggle takes a single item id")
		}
		if _, err := n.Service.Toggle(ctx, n.IDs[0]); err != nil {
			return err
		}
	} else if err := n.Service.BulkUpdate(ctx, n.IDs, item.Patch{Completed: n.Completed}); err != nil {
		return err
	}

	changed := make([]item.Item, 0, len(n.IDs))
	for _, id := range n.IDs {
		if it, ok := n.Service.Get(id); ok {
			changed = append(changed, it)
		}
	}
	if n.JSON {
		return printers.JSON(n.Out, changed)
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	printed := map[string]bool{}
	for _, it := range changed {
		if printed[it.DayKey] {
			continue
		}
		printed[it.DayKey] = true
		items := n.Service.ItemsOnDay(it.DayKey)
		pp.TitleWithCount(it.DayKey, len(items))
		pp.Items(items...)
	}
	return nil
}
