// Package remove provides the runners that delete items.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
)

// Remove deletes every id, or none of them.
type Remove struct {
	IDs []string
	Out io.Writer

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no daybook")
	}

	var err error
	if len(n.IDs) == 1 {
		err = n.Service.Delete(ctx, n.IDs[0])
	} else {
		err = n.Service.BulkRemove(ctx, n.IDs)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "removed %d item(s)\n", len(n.IDs))
	return nil
}

// Clear deletes every item filed under Day, or the whole daybook when All
// is set.
type Clear struct {
	Day string
	All bool
	Out io.Writer

	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no daybook")
	}

	if n.All {
		count := n.Service.Count()
		if err := n.Service.ClearAll(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out(n.Out), "cleared %d item(s)\n", count)
		return nil
	}

	count := n.Service.CountOnDay(n.Day)
	if err := n.Service.ClearDay(ctx, n.Day); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "cleared %d item(s) from %s\n", count, n.Day)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
