package app

import (
	"errors"
	"fmt"
)

// ErrStorage is matched by every *StorageError.
var ErrStorage = errors.New("app: storage failure")

// StorageError reports that the blob store could not read or write the
// daybook. Op names the facade operation that was running.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("app: %s: storage %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
