// Package add provides the runner for filing new items.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Add files a new item and prints the day it landed on.
type Add struct {
	Title       string
	Description string
	On          time.Time
	ShowID      bool
	JSON        bool
	Out         io.Writer

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no daybook")
	}

	it, err := n.Service.Add(ctx, n.Title, n.Description, n.On)
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, it)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	items := n.Service.ItemsOnDay(it.DayKey)
	pp.TitleWithCount(it.DayKey, len(items))
	pp.Items(items...)
	return nil
}
