// Package glyph maps item status to the symbols printed next to items, and
// parses the status words accepted on the command line.
package glyph

import (
	"fmt"
	"strings"
)

// Glyph is a printable status marker.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Status selects items by completion.
type Status int

const (
	Any Status = iota
	Pending
	Done
)

var glyphs = map[Status]Glyph{
	Pending: {Key: "+", Symbol: "●", Meaning: "pending"},
	Done:    {Key: "x", Symbol: "✘", Meaning: "done"},
	Any:     {Key: "", Symbol: "", Meaning: "any"},
}

var aliases = map[string]Status{
	"":          Any,
	"any":       Any,
	"all":       Any,
	"+":         Pending,
	"pending":   Pending,
	"open":      Pending,
	"todo":      Pending,
	"x":         Done,
	"done":      Done,
	"complete":  Done,
	"completed": Done,
}

// Legend returns the glyphs printed for items, in display order.
func Legend() []Glyph {
	return []Glyph{glyphs[Pending], glyphs[Done]}
}

// For returns the status of an item with the given completion flag.
func For(completed bool) Status {
	if completed {
		return Done
	}
	return Pending
}

// Glyph returns the marker for s.
func (s Status) Glyph() Glyph {
	return glyphs[s]
}

func (s Status) String() string {
	return glyphs[s].Meaning
}

// Matches reports whether an item with the given completion flag has status s.
func (s Status) Matches(completed bool) bool {
	return s == Any || s == For(completed)
}

// Set implements pflag.Value.
func (s *Status) Set(raw string) error {
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Type implements pflag.Value.
func (s *Status) Type() string {
	return "status"
}

// ParseStatus converts a status word or glyph key to a Status.
func ParseStatus(raw string) (Status, error) {
	if st, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return st, nil
	}
	return Any, fmt.Errorf("glyph: unknown status %q, want one of any, pending, done", raw)
}
