// Package get provides the runner for listing items.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

type Get struct {
	// Day is a day key. Empty means today.
	Day    string
	All    bool
	Status glyph.Status
	Key    collection.SortKey
	Order  collection.Order
	ShowID bool
	JSON   bool
	Watch  bool
	Out    io.Writer

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no daybook")
	}
	if n.Day == "" {
		n.Day = timeutil.Today()
	}

	if err := n.print(); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for range events {
		if err := n.print(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Get) print() error {
	c, err := n.Service.Sort(n.Key, n.Order)
	if err != nil {
		return err
	}
	switch n.Status {
	case glyph.Pending:
		c = collection.FilterByStatus(c, false)
	case glyph.Done:
		c = collection.FilterByStatus(c, true)
	}

	if n.JSON {
		if n.All {
			return printers.JSON(n.Out, collection.AllItems(c))
		}
		return printers.JSON(n.Out, collection.ItemsOnDay(c, n.Day))
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	if n.All {
		pp.Days(c)
		return nil
	}
	items := collection.ItemsOnDay(c, n.Day)
	pp.TitleWithCount(n.Day, len(items))
	pp.Items(items...)
	return nil
}
