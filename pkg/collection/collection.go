// Package collection implements the day-indexed item collection: a mapping
// from day key to the ordered items filed under that day.
//
// A Collection is a value. Every operation is a function of its inputs that
// returns a new Collection (or derived data) and never modifies a Collection
// it was handed, so snapshots can be shared freely. The zero Collection is
// empty and ready to use.
package collection

import (
	"maps"
	"slices"

	"tableflip.dev/daybook/pkg/item"
)

// Collection maps day keys to buckets of items. Buckets are never empty.
type Collection struct {
	days map[string][]item.Item
}

// Empty returns a collection with no items.
func Empty() Collection {
	return Collection{}
}

// Len returns the number of items across all days.
func (c Collection) Len() int {
	n := 0
	for _, bucket := range c.days {
		n += len(bucket)
	}
	return n
}

// locate finds the bucket and position of id.
func (c Collection) locate(id string) (string, int, bool) {
	for key, bucket := range c.days {
		for i, it := range bucket {
			if it.ID == id {
				return key, i, true
			}
		}
	}
	return "", 0, false
}

// edit is a copy of a collection's day map under construction. Buckets stored
// in an edit are owned by it; buckets shared with the source are replaced,
// never written through.
type edit map[string][]item.Item

func (c Collection) edit() edit {
	m := make(edit, len(c.days)+1)
	for k, v := range c.days {
		m[k] = v
	}
	return m
}

// set stores bucket under key, dropping the key when the bucket is empty.
func (e edit) set(key string, bucket []item.Item) {
	if len(bucket) == 0 {
		delete(e, key)
		return
	}
	e[key] = bucket
}

func (e edit) appendTo(key string, it item.Item) {
	e[key] = append(slices.Clone(e[key]), it)
}

func (e edit) removeAt(key string, idx int) {
	e.set(key, slices.Delete(slices.Clone(e[key]), idx, idx+1))
}

func (e edit) done() Collection {
	return Collection{days: e}
}

// replace swaps the item at key/idx for updated, relocating it to the end of
// its new day's bucket when its day key changed.
func (c Collection) replace(key string, idx int, updated item.Item) Collection {
	e := c.edit()
	if updated.DayKey == key {
		bucket := slices.Clone(e[key])
		bucket[idx] = updated
		e.set(key, bucket)
		return e.done()
	}
	e.removeAt(key, idx)
	e.appendTo(updated.DayKey, updated)
	return e.done()
}

func sortedKeys(days map[string][]item.Item) []string {
	return slices.Sorted(maps.Keys(days))
}
