package collection

import (
	"fmt"

	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Insert validates it and appends it to the end of its day's bucket. Ids are
// unique across the whole collection, not per day.
func Insert(c Collection, it item.Item) (Collection, error) {
	if err := item.Validate(it); err != nil {
		return c, err
	}
	if key, _, ok := c.locate(it.ID); ok {
		return c, &DuplicateIDError{ID: it.ID, DayKey: key}
	}
	e := c.edit()
	e.appendTo(it.DayKey, it)
	return e.done(), nil
}

// ApplyUpdate applies patch to the item with the given id. A patch that
// changes the day moves the item to the end of the new day's bucket.
func ApplyUpdate(c Collection, id string, patch item.Patch) (Collection, error) {
	key, idx, ok := c.locate(id)
	if !ok {
		return c, &NotFoundError{ID: id}
	}
	updated, err := item.Update(c.days[key][idx], patch)
	if err != nil {
		return c, err
	}
	return c.refile(key, idx, updated)
}

// Remove deletes the item with the given id.
func Remove(c Collection, id string) (Collection, error) {
	key, idx, ok := c.locate(id)
	if !ok {
		return c, &NotFoundError{ID: id}
	}
	e := c.edit()
	e.removeAt(key, idx)
	return e.done(), nil
}

// Toggle flips the completion flag of the item with the given id.
func Toggle(c Collection, id string) (Collection, error) {
	key, idx, ok := c.locate(id)
	if !ok {
		return c, &NotFoundError{ID: id}
	}
	updated, err := item.ToggleCompleted(c.days[key][idx])
	if err != nil {
		return c, err
	}
	return c.refile(key, idx, updated)
}

// refile validates updated before it replaces the item at key/idx, so an
// update can never store what Insert would refuse.
func (c Collection) refile(key string, idx int, updated item.Item) (Collection, error) {
	if err := item.Validate(updated); err != nil {
		return c, err
	}
	return c.replace(key, idx, updated), nil
}

// BulkUpdate applies patch to every id in order. It is all or nothing: on
// the first failure the input collection is returned with the error.
func BulkUpdate(c Collection, ids []string, patch item.Patch) (Collection, error) {
	next := c
	for _, id := range ids {
		var err error
		if next, err = ApplyUpdate(next, id, patch); err != nil {
			return c, err
		}
	}
	return next, nil
}

// BulkRemove removes every id in order, with the same all or nothing
// contract as BulkUpdate.
func BulkRemove(c Collection, ids []string) (Collection, error) {
	next := c
	for _, id := range ids {
		var err error
		if next, err = Remove(next, id); err != nil {
			return c, err
		}
	}
	return next, nil
}

// ClearDay drops the bucket for key. Clearing a day with no items is a no-op.
func ClearDay(c Collection, key string) Collection {
	if _, ok := c.days[key]; !ok {
		return c
	}
	e := c.edit()
	delete(e, key)
	return e.done()
}

// MovePending moves every pending item filed under from to the end of the
// bucket for to, keeping their relative order. Completed items stay put. It
// returns the ids that moved.
func MovePending(c Collection, from, to string) (Collection, []string, error) {
	day, err := timeutil.ParseDayKey(to)
	if err != nil {
		return c, nil, fmt.Errorf("%w: %v", item.ErrInvalidArgument, err)
	}
	if from == to {
		return c, nil, nil
	}
	var ids []string
	for _, it := range c.days[from] {
		if !it.Completed {
			ids = append(ids, it.ID)
		}
	}
	if len(ids) == 0 {
		return c, nil, nil
	}
	next, err := BulkUpdate(c, ids, item.Patch{Day: &day})
	if err != nil {
		return c, nil, err
	}
	return next, ids, nil
}
