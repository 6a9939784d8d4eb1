package app

import (
	"context"
	"errors"

	"tableflip.dev/daybook/pkg/store"
)

// Watch reloads the daybook whenever another process changes the stored
// value, and emits an event after each successful reload. It requires a
// blob that implements store.Watcher. The channel closes when ctx is done.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	w, ok := s.blob.(store.Watcher)
	if !ok {
		return nil, errors.New("app: blob store does not support watching")
	}
	in, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan store.Event, 1)
	go func() {
		defer close(out)
		for ev := range in {
			if ev.Key != s.key {
				continue
			}
			if err := s.Reload(ctx); err != nil {
				s.log.WithError(err).Warn("reload after change failed")
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
