package app

import (
	"context"

	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/timeutil"
)

// MigrationCandidates returns pending items left on days before today.
// When today is empty the current local date is used.
func (s *Service) MigrationCandidates(today string) []item.Item {
	if today == "" {
		today = timeutil.Today()
	}
	return collection.Overdue(s.Snapshot(), today)
}

// MigratePending moves every pending item on from to the day to, in one
// write. It returns the ids that moved; nothing is written when none did.
func (s *Service) MigratePending(ctx context.Context, from, to string) ([]string, error) {
	var moved []string
	err := s.mutate(ctx, "migrate", func(c collection.Collection) (collection.Collection, error) {
		next, ids, err := collection.MovePending(c, from, to)
		if err != nil {
			return c, err
		}
		moved = ids
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}
