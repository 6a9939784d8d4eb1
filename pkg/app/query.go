package app

import (
	"time"

	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/item"
)

// ItemsOnDay lists the items filed under key.
func (s *Service) ItemsOnDay(key string) []item.Item {
	return collection.ItemsOnDay(s.Snapshot(), key)
}

// ItemsOn lists the items filed under the calendar day of t.
func (s *Service) ItemsOn(t time.Time) []item.Item {
	return collection.ItemsOn(s.Snapshot(), t)
}

// AllItems lists every item, day by day.
func (s *Service) AllItems() []item.Item {
	return collection.AllItems(s.Snapshot())
}

// Days lists the days that have items.
func (s *Service) Days() []string {
	return collection.Days(s.Snapshot())
}

// Get looks up an item by id.
func (s *Service) Get(id string) (item.Item, bool) {
	return collection.FindByID(s.Snapshot(), id)
}

// HasItemsOnDay reports whether key has any items.
func (s *Service) HasItemsOnDay(key string) bool {
	return collection.HasItemsOnDay(s.Snapshot(), key)
}

// CountOnDay returns how many items are filed under key.
func (s *Service) CountOnDay(key string) int {
	return collection.CountOnDay(s.Snapshot(), key)
}

// Count returns the total number of items.
func (s *Service) Count() int {
	return s.Snapshot().Len()
}

// Stats summarizes completion across the daybook.
func (s *Service) Stats() collection.Stats {
	return collection.ComputeStats(s.Snapshot())
}

// Search finds items whose title or description contains term.
func (s *Service) Search(term string) []item.Item {
	return collection.Search(s.Snapshot(), term)
}

// FilterByStatus returns the completed or the pending items, by day.
func (s *Service) FilterByStatus(completed bool) collection.Collection {
	return collection.FilterByStatus(s.Snapshot(), completed)
}

// Sort returns the daybook with each day ordered by key.
func (s *Service) Sort(key collection.SortKey, order collection.Order) (collection.Collection, error) {
	return collection.Sort(s.Snapshot(), key, order, collection.WithLocale(s.locale))
}

// Range lists the items filed between start and end, inclusive.
func (s *Service) Range(start, end string) []item.Item {
	return collection.RangeQuery(s.Snapshot(), start, end)
}
