// Package store provides the key/value blob boundary the daybook persists
// through, with a diskv-backed implementation for the CLI and an in-memory
// one for tests and throwaway sessions.
package store

import (
	"context"
	"errors"
)

// Blob is a string-keyed store of opaque values. Get reports a missing key
// with ok == false and a nil error. Remove of a missing key is not an error.
type Blob interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Watcher is implemented by blobs that can report changes made outside the
// current process.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event is emitted by Watch when the value stored under Key changed.
type Event struct {
	Key string
}

// ErrInvalidKey is returned for keys a blob cannot store.
var ErrInvalidKey = errors.New("store: invalid key")
