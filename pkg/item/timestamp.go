package item

import (
	"encoding/json"
	"fmt"
	"time"
)

// layoutTimestamp is a fixed-width ISO-8601 layout in UTC, so that persisted
// timestamps sort lexicographically.
const layoutTimestamp = "2006-01-02T15:04:05.000Z07:00"

// ParseTime parses a persisted timestamp. RFC3339 with any fractional
// precision is accepted.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is a time that marshals as a layoutTimestamp string.
type Timestamp struct {
	time.Time
}

// Stamp wraps t, normalized to UTC at millisecond precision.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutTimestamp)
}
