package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar grid for the month of then, with days that have
// items in bold.
func (pp *PrettyPrint) Month(then time.Time, c collection.Collection) {
	pp.PrintMonthCount(then, MonthCounts(then, c))
}

// MonthCounts returns the number of items filed under each day of the month
// of then, indexed from day 1.
func MonthCounts(then time.Time, c collection.Collection) []int {
	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	count := make([]int, DaysIn(then))
	for i := range count {
		count[i] = collection.CountOnDay(c, timeutil.DayKey(first.AddDate(0, 0, i)))
	}
	return count
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// MonthLong prints every day of the month of then on its own line, followed
// by the items filed under it.
func (pp *PrettyPrint) MonthLong(then time.Time, c collection.Collection) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	today := timeutil.Today()
	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	d := StartDay(then)
	for i := 0; i < DaysIn(then); i++ {
		key := timeutil.DayKey(first.AddDate(0, 0, i))

		printer := p
		switch {
		case d == time.Sunday && key == today:
			printer = bs
		case d == time.Sunday:
			printer = s
		case key == today:
			printer = b
		}
		_, _ = printer.Fprintf(pp.out(), "%2d %s", i+1, d.String()[0:1])

		for n, it := range collection.ItemsOnDay(c, key) {
			if n > 0 {
				_, _ = p.Fprint(pp.out(), "    ")
			}
			_, _ = p.Fprintf(pp.out(), "  %s %s\n", glyph.For(it.Completed).Glyph(), it.Title)
		}
		if !collection.HasItemsOnDay(c, key) {
			_, _ = p.Fprintln(pp.out())
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
