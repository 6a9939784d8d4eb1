package collection

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/item"
)

// SortKey selects the field items are ordered by.
type SortKey string

const (
	SortCreated   SortKey = "created"
	SortTitle     SortKey = "title"
	SortCompleted SortKey = "completed"
)

// Order selects ascending or descending order.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseSortKey converts a string to a SortKey.
func ParseSortKey(raw string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case SortCreated, SortTitle, SortCompleted:
		return k, nil
	case "":
		return SortCreated, nil
	default:
		return "", fmt.Errorf("collection: unknown sort key %q", raw)
	}
}

// ParseOrder converts a string to an Order.
func ParseOrder(raw string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(raw))); o {
	case Asc, Desc:
		return o, nil
	case "":
		return Asc, nil
	default:
		return "", fmt.Errorf("collection: unknown sort order %q", raw)
	}
}

type sortConfig struct {
	locale language.Tag
}

// SortOption tunes Sort.
type SortOption func(*sortConfig)

// WithLocale sets the language whose collation rules order titles.
func WithLocale(tag language.Tag) SortOption {
	return func(cfg *sortConfig) {
		cfg.locale = tag
	}
}

// Sort reorders every day's bucket independently. Items never move between
// days. Equal items keep their relative order.
func Sort(c Collection, key SortKey, order Order, opts ...SortOption) (Collection, error) {
	cfg := sortConfig{locale: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}
	cmp, err := comparator(key, cfg)
	if err != nil {
		return c, err
	}
	switch order {
	case Asc:
	case Desc:
		asc := cmp
		cmp = func(a, b item.Item) int { return -asc(a, b) }
	default:
		return c, fmt.Errorf("collection: unknown sort order %q", order)
	}

	e := make(edit, len(c.days))
	for day, bucket := range c.days {
		sorted := slices.Clone(bucket)
		slices.SortStableFunc(sorted, cmp)
		e.set(day, sorted)
	}
	return e.done(), nil
}

func comparator(key SortKey, cfg sortConfig) (func(a, b item.Item) int, error) {
	switch key {
	case SortCreated:
		return func(a, b item.Item) int {
			return a.CreatedAt.Compare(b.CreatedAt.Time)
		}, nil
	case SortTitle:
		// Collators keep scratch buffers, so each Sort call gets its own.
		col := collate.New(cfg.locale)
		return func(a, b item.Item) int {
			return col.CompareString(a.Title, b.Title)
		}, nil
	case SortCompleted:
		return func(a, b item.Item) int {
			switch {
			case a.Completed == b.Completed:
				return 0
			case !a.Completed:
				return -1
			default:
				return 1
			}
		}, nil
	default:
		return nil, fmt.Errorf("collection: unknown sort key %q", key)
	}
}
