package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/item"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

// ids are uuids, 36 characters.
var spacing = strings.Repeat(" ", len("0190a7a2-6f3c-7c1e-8d2b-5a9e4f1c2b3d  "))

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Items prints one line per item: status glyph, title and, when set, the
// description.
func (pp *PrettyPrint) Items(items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.CrossedOut, color.Faint)
	d := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), it.ID)
			if pad := len(spacing) - len(it.ID); pad > 0 {
				_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Fprintf(pp.out(), "%s ", glyph.For(it.Completed).Glyph())
		if it.Completed {
			_, _ = done.Fprint(pp.out(), it.Title)
		} else {
			_, _ = t.Fprint(pp.out(), it.Title)
		}
		if it.Description != "" {
			_, _ = d.Fprintf(pp.out(), "  %s", it.Description)
		}
		_, _ = t.Fprintln(pp.out())
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Days prints every day of c with its items.
func (pp *PrettyPrint) Days(c collection.Collection) {
	days := collection.Days(c)
	if len(days) == 0 {
		pp.Items()
		return
	}
	for _, day := range days {
		items := collection.ItemsOnDay(c, day)
		pp.TitleWithCount(day, len(items))
		pp.Items(items...)
	}
}

func statsRow(tbl *uitable.Table, label string, s collection.Stats) {
	tbl.AddRow(label, s.Total, s.Completed, s.Pending, fmt.Sprintf("%.1f%%", s.CompletionRate))
}

// Stats prints a completion summary table.
func (pp *PrettyPrint) Stats(s collection.Stats) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Total"), bold.Sprint("Done"), bold.Sprint("Pending"), bold.Sprint("Rate"))
	statsRow(tbl, "all", s)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Report prints per-day completion for a window followed by the totals.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.Title(fmt.Sprintf("%s to %s", r.Since, r.Until))

	if len(r.Sections) == 0 {
		pp.Items()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Total"), bold.Sprint("Done"), bold.Sprint("Pending"), bold.Sprint("Rate"))
	for _, sec := range r.Sections {
		statsRow(tbl, sec.DayKey, sec.Stats)
	}
	statsRow(tbl, bold.Sprint("total"), r.Total)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	for _, sec := range r.Sections {
		if len(sec.Completed) == 0 {
			continue
		}
		pp.TitleWithCount(sec.DayKey, len(sec.Completed))
		pp.Items(sec.Completed...)
	}
}
