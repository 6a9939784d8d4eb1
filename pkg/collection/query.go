package collection

import (
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Stats summarizes completion across a collection.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	// CompletionRate is a percentage between 0 and 100.
	CompletionRate float64 `json:"completionRate"`
}

// ItemsOnDay returns the items filed under key in bucket order, or an empty
// slice when the day has none.
func ItemsOnDay(c Collection, key string) []item.Item {
	return append([]item.Item{}, c.days[key]...)
}

// ItemsOn is ItemsOnDay for a date value.
func ItemsOn(c Collection, day time.Time) []item.Item {
	return ItemsOnDay(c, timeutil.DayKey(day))
}

// HasItemsOnDay reports whether any item is filed under key.
func HasItemsOnDay(c Collection, key string) bool {
	return len(c.days[key]) > 0
}

// CountOnDay returns the number of items filed under key.
func CountOnDay(c Collection, key string) int {
	return len(c.days[key])
}

// Days returns the keys of all non-empty days in ascending order.
func Days(c Collection) []string {
	return sortedKeys(c.days)
}

// AllItems flattens the collection, walking days in ascending key order.
func AllItems(c Collection) []item.Item {
	out := make([]item.Item, 0, c.Len())
	for _, key := range sortedKeys(c.days) {
		out = append(out, c.days[key]...)
	}
	return out
}

// FindByID looks up an item without failing when it is absent.
func FindByID(c Collection, id string) (item.Item, bool) {
	key, idx, ok := c.locate(id)
	if !ok {
		return item.Item{}, false
	}
	return c.days[key][idx], true
}

// ComputeStats counts completed and pending items.
func ComputeStats(c Collection) Stats {
	var s Stats
	for _, bucket := range c.days {
		s = s.add(bucket)
	}
	return s.finish()
}

// Tally computes Stats over a flat list of items.
func Tally(items []item.Item) Stats {
	var s Stats
	return s.add(items).finish()
}

func (s Stats) add(items []item.Item) Stats {
	for _, it := range items {
		s.Total++
		if it.Completed {
			s.Completed++
		}
	}
	return s
}

func (s Stats) finish() Stats {
	s.Pending = s.Total - s.Completed
	s.CompletionRate = 0
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}

// FilterByStatus keeps only items whose completion flag equals completed.
// Days left without items are dropped.
func FilterByStatus(c Collection, completed bool) Collection {
	e := make(edit, len(c.days))
	for key, bucket := range c.days {
		var kept []item.Item
		for _, it := range bucket {
			if it.Completed == completed {
				kept = append(kept, it)
			}
		}
		e.set(key, kept)
	}
	return e.done()
}

// Search returns items whose title or description contains term, ignoring
// case. The term is matched as given, spaces included; an empty term
// matches nothing.
func Search(c Collection, term string) []item.Item {
	if term == "" {
		return []item.Item{}
	}
	term = strings.ToLower(term)
	out := []item.Item{}
	for _, it := range AllItems(c) {
		if strings.Contains(strings.ToLower(it.Title), term) ||
			strings.Contains(strings.ToLower(it.Description), term) {
			out = append(out, it)
		}
	}
	return out
}

// RangeQuery returns the items filed under days in [start, end], inclusive.
// Day keys compare lexicographically in calendar order.
func RangeQuery(c Collection, start, end string) []item.Item {
	out := []item.Item{}
	if start > end {
		return out
	}
	for _, key := range sortedKeys(c.days) {
		if key >= start && key <= end {
			out = append(out, c.days[key]...)
		}
	}
	return out
}

// Overdue returns pending items filed under days before today.
func Overdue(c Collection, today string) []item.Item {
	out := []item.Item{}
	for _, key := range sortedKeys(c.days) {
		if key >= today {
			break
		}
		for _, it := range c.days[key] {
			if !it.Completed {
				out = append(out, it)
			}
		}
	}
	return out
}
