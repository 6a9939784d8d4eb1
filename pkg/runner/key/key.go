// Package key provides the runner that prints the status legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/glyph"
)

// Key prints the glyphs used for item status and the words that select them.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Status"), bold.Sprint("Key"))
	for _, g := range glyph.Legend() {
		tbl.AddRow(g.Symbol, g.Meaning, g.Key)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
	return nil
}
