// Package edit provides the runner for changing and moving an item.
package edit

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/printers"
)

// Edit applies the set fields to one item. A non-zero On moves it.
type Edit struct {
	ID          string
	Title       *string
	Description *string
	On          time.Time
	ShowID      bool
	JSON        bool
	Out         io.Writer

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no daybook")
	}

	patch := item.Patch{Title: n.Title, Description: n.Description}
	if !n.On.IsZero() {
		patch.Day = &n.On
	}
	if patch.IsEmpty() {
		return errors.New("nothing to change, set --title, --description or --on")
	}

	before, ok := n.Service.Get(n.ID)
	updated, err := n.Service.Update(ctx, n.ID, patch)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, updated)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	if ok && before.DayKey != updated.DayKey {
		rest := n.Service.ItemsOnDay(before.DayKey)
		pp.TitleWithCount(before.DayKey, len(rest))
		pp.Items(rest...)
	}
	items := n.Service.ItemsOnDay(updated.DayKey)
	pp.TitleWithCount(updated.DayKey, len(items))
	pp.Items(items...)
	return nil
}
