package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("collection: item not found")

	// ErrDuplicateID is matched by every *DuplicateIDError.
	ErrDuplicateID = errors.New("collection: duplicate item id")
)

// NotFoundError names the id an operation could not find.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("collection: item %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateIDError names an id that is already filed, and the day it is
// filed under.
type DuplicateIDError struct {
	ID     string
	DayKey string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("collection: item %q already exists on %s", e.ID, e.DayKey)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
