package app

import (
	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/item"
)

// ReportSection summarizes one day.
type ReportSection struct {
	DayKey    string           `json:"dayKey"`
	Stats     collection.Stats `json:"stats"`
	Completed []item.Item      `json:"completed"`
	Pending   []item.Item      `json:"pending"`
}

// ReportResult summarizes every day with items in a window.
type ReportResult struct {
	Since    string           `json:"since"`
	Until    string           `json:"until"`
	Sections []ReportSection  `json:"sections"`
	Total    collection.Stats `json:"total"`
}

// Report groups the items filed between since and until, inclusive, by day.
// Bounds given in the wrong order are swapped.
func (s *Service) Report(since, until string) ReportResult {
	if since > until {
		since, until = until, since
	}
	snap := s.Snapshot()
	res := ReportResult{Since: since, Until: until, Sections: []ReportSection{}}
	var all []item.Item
	for _, day := range collection.Days(snap) {
		if day < since || day > until {
			continue
		}
		items := collection.ItemsOnDay(snap, day)
		sec := ReportSection{
			DayKey:    day,
			Stats:     collection.Tally(items),
			Completed: []item.Item{},
			Pending:   []item.Item{},
		}
		for _, it := range items {
			if it.Completed {
				sec.Completed = append(sec.Completed, it)
			} else {
				sec.Pending = append(sec.Pending, it)
			}
		}
		res.Sections = append(res.Sections, sec)
		all = append(all, items...)
	}
	res.Total = collection.Tally(all)
	return res
}
