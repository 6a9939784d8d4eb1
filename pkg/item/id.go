package item

import (
	"github.com/google/uuid"
)

// NewID returns a fresh item id. UUIDv7 combines a millisecond timestamp with
// random bits, so ids are unique without coordination and roughly sortable by
// creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
