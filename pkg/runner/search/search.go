// Package search provides the runner for finding items by text.
package search

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Search prints every item whose title or description contains Term.
type Search struct {
	Term   string
	ShowID bool
	JSON   bool
	Out    io.Writer

	Service *app.Service
}

func (n *Search) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no daybook")
	}

	found := n.Service.Search(n.Term)
	if n.JSON {
		return printers.JSON(n.Out, found)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	day := ""
	for i, it := range found {
		if it.DayKey == day {
			continue
		}
		day = it.DayKey
		j := i
		for j < len(found) && found[j].DayKey == day {
			j++
		}
		pp.TitleWithCount(day, j-i)
		pp.Items(found[i:j]...)
	}
	if len(found) == 0 {
		pp.Items()
	}
	return nil
}
