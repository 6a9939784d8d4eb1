// Package app binds the pure collection engine to a persisted blob and
// exposes the daybook operations shared by the CLI runners.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/store"
)

// Service holds the current collection and persists every change to a blob.
//
// Mutations are serialized: each one reads the current snapshot, computes the
// next one with the collection engine, writes it, and only then makes it
// visible. A failed write leaves the visible state untouched. Reads never
// touch the blob and are not blocked by an in-flight write.
type Service struct {
	blob   store.Blob
	key    string
	log    logrus.FieldLogger
	locale language.Tag

	writeMu sync.Mutex

	mu      sync.RWMutex
	current collection.Collection
	raw     []byte
}

// Option configures a Service.
type Option func(*Service)

// WithKey sets the blob key the collection is stored under.
func WithKey(key string) Option {
	return func(s *Service) {
		s.key = key
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithLocale sets the collation language used when sorting by title.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) {
		s.locale = tag
	}
}

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Open loads the collection stored under the configured key. A missing value
// starts an empty daybook. Every stored record is validated here, so a
// corrupt blob fails Open rather than a later operation.
func Open(ctx context.Context, blob store.Blob, opts ...Option) (*Service, error) {
	if blob == nil {
		return nil, errors.New("app: no blob store configured")
	}
	s := &Service{
		blob:   blob,
		key:    store.DefaultKey,
		locale: language.Und,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = defaultLogger()
	}
	s.log = s.log.WithField("key", s.key)

	c, raw, err := s.load(ctx, "load")
	if err != nil {
		return nil, err
	}
	s.current, s.raw = c, raw
	s.log.WithFields(logrus.Fields{
		"days":  len(collection.Days(c)),
		"items": c.Len(),
	}).Debug("daybook loaded")
	return s, nil
}

func (s *Service) load(ctx context.Context, op string) (collection.Collection, []byte, error) {
	raw, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		s.log.WithError(err).WithField("op", op).Error("storage read failed")
		return collection.Collection{}, nil, &StorageError{Op: op, Key: s.key, Err: err}
	}
	if !ok {
		return collection.Empty(), nil, nil
	}
	c, err := collection.Unmarshal(raw)
	if err != nil {
		return collection.Collection{}, nil, fmt.Errorf("app: %s %q: %w", op, s.key, err)
	}
	return c, raw, nil
}

// Snapshot returns the current collection. Collections are values, so the
// snapshot stays valid after later mutations.
func (s *Service) Snapshot() collection.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// mutate runs fn against the current snapshot and persists the result.
func (s *Service) mutate(ctx context.Context, op string, fn func(collection.Collection) (collection.Collection, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.Snapshot())
	if err != nil {
		return err
	}
	data, err := collection.Marshal(next)
	if err != nil {
		return &StorageError{Op: op, Key: s.key, Err: err}
	}
	if err := s.blob.Set(ctx, s.key, data); err != nil {
		s.log.WithError(err).WithField("op", op).Error("storage write failed")
		return &StorageError{Op: op, Key: s.key, Err: err}
	}
	s.publish(next, data)
	s.log.WithFields(logrus.Fields{"op": op, "items": next.Len()}).Debug("daybook saved")
	return nil
}

func (s *Service) publish(c collection.Collection, raw []byte) {
	s.mu.Lock()
	s.current, s.raw = c, raw
	s.mu.Unlock()
}

// Add creates an item for day (today when zero) and files it.
func (s *Service) Add(ctx context.Context, title, description string, day time.Time) (item.Item, error) {
	it, err := item.New(title, description, day)
	if err != nil {
		return item.Item{}, err
	}
	err = s.mutate(ctx, "add", func(c collection.Collection) (collection.Collection, error) {
		return collection.Insert(c, it)
	})
	if err != nil {
		return item.Item{}, err
	}
	return it, nil
}

// Update applies patch to the item with the given id and returns the result.
func (s *Service) Update(ctx context.Context, id string, patch item.Patch) (item.Item, error) {
	var updated item.Item
	err := s.mutate(ctx, "update", func(c collection.Collection) (collection.Collection, error) {
		next, err := collection.ApplyUpdate(c, id, patch)
		if err != nil {
			return c, err
		}
		updated, _ = collection.FindByID(next, id)
		return next, nil
	})
	if err != nil {
		return item.Item{}, err
	}
	return updated, nil
}

// Move refiles the item under day.
func (s *Service) Move(ctx context.Context, id string, day time.Time) (item.Item, error) {
	return s.Update(ctx, id, item.Patch{Day: &day})
}

// Toggle flips the completion flag of the item with the given id.
func (s *Service) Toggle(ctx context.Context, id string) (item.Item, error) {
	var toggled item.Item
	err := s.mutate(ctx, "toggle", func(c collection.Collection) (collection.Collection, error) {
		next, err := collection.Toggle(c, id)
		if err != nil {
			return c, err
		}
		toggled, _ = collection.FindByID(next, id)
		return next, nil
	})
	if err != nil {
		return item.Item{}, err
	}
	return toggled, nil
}

// Delete removes the item with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete", func(c collection.Collection) (collection.Collection, error) {
		return collection.Remove(c, id)
	})
}

// BulkUpdate applies patch to every id, or to none of them.
func (s *Service) BulkUpdate(ctx context.Context, ids []string, patch item.Patch) error {
	return s.mutate(ctx, "bulk-update", func(c collection.Collection) (collection.Collection, error) {
		return collection.BulkUpdate(c, ids, patch)
	})
}

// BulkRemove removes every id, or none of them.
func (s *Service) BulkRemove(ctx context.Context, ids []string) error {
	return s.mutate(ctx, "bulk-remove", func(c collection.Collection) (collection.Collection, error) {
		return collection.BulkRemove(c, ids)
	})
}

// ClearDay removes every item filed under key.
func (s *Service) ClearDay(ctx context.Context, key string) error {
	return s.mutate(ctx, "clear-day", func(c collection.Collection) (collection.Collection, error) {
		return collection.ClearDay(c, key), nil
	})
}

// ClearAll removes the stored daybook entirely.
func (s *Service) ClearAll(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.blob.Remove(ctx, s.key); err != nil {
		s.log.WithError(err).WithField("op", "clear-all").Error("storage remove failed")
		return &StorageError{Op: "clear-all", Key: s.key, Err: err}
	}
	s.publish(collection.Empty(), nil)
	s.log.WithField("op", "clear-all").Debug("daybook cleared")
	return nil
}

// Reload re-reads the blob, replacing the visible collection when the stored
// value changed since it was last read or written.
func (s *Service) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, ok, err := s.blob.Get(ctx, s.key)
	if err != nil {
		s.log.WithError(err).WithField("op", "reload").Error("storage read failed")
		return &StorageError{Op: "reload", Key: s.key, Err: err}
	}
	s.mu.RLock()
	unchanged := bytes.Equal(raw, s.raw)
	s.mu.RUnlock()
	if ok && unchanged {
		return nil
	}
	c := collection.Empty()
	if ok {
		if c, err = collection.Unmarshal(raw); err != nil {
			return fmt.Errorf("app: reload %q: %w", s.key, err)
		}
	}
	s.publish(c, raw)
	s.log.WithField("items", c.Len()).Info("daybook reloaded")
	return nil
}
