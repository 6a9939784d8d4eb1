package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Marshal serialises the collection as a JSON object from day key to the
// array of item records filed under it.
func Marshal(c Collection) ([]byte, error) {
	days := c.days
	if days == nil {
		days = map[string][]item.Item{}
	}
	return json.Marshal(days)
}

// Unmarshal rebuilds a collection from Marshal output. Every record is
// validated; all malformed records are reported together in one
// *item.MalformedError whose fields are prefixed with "<day>[<index>].".
// An id filed twice yields a *DuplicateIDError. Empty data and empty
// buckets are accepted and produce no days.
func Unmarshal(data []byte) (Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Empty(), nil
	}
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Collection{}, fmt.Errorf("collection: decode: %w", err)
	}

	var problems []item.Problem
	e := make(edit, len(raw))
	seen := make(map[string]string)
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if !timeutil.IsDayKey(key) {
			problems = append(problems, item.Problem{Field: key, Reason: "day key must match YYYY-MM-DD"})
			continue
		}
		var bucket []item.Item
		for i, rec := range raw[key] {
			prefix := fmt.Sprintf("%s[%d].", key, i)
			it, err := item.Decode(rec)
			if err != nil {
				var malformed *item.MalformedError
				if !errors.As(err, &malformed) {
					return Collection{}, err
				}
				for _, p := range malformed.Problems {
					problems = append(problems, item.Problem{Field: prefix + p.Field, Reason: p.Reason})
				}
				continue
			}
			if it.DayKey != key {
				problems = append(problems, item.Problem{Field: prefix + "dayKey", Reason: "does not match its day"})
				continue
			}
			if day, dup := seen[it.ID]; dup {
				return Collection{}, &DuplicateIDError{ID: it.ID, DayKey: day}
			}
			seen[it.ID] = key
			bucket = append(bucket, it)
		}
		e.set(key, bucket)
	}
	if len(problems) > 0 {
		return Collection{}, &item.MalformedError{Problems: problems}
	}
	return e.done(), nil
}
