// Package item defines the task record stored in a daybook and the rules for
// creating, changing and validating one.
package item

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/timeutil"
)

// Item is a single task filed under a calendar day.
type Item struct {
	ID          string    `json:"id" validate:"required,notblank"`
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	DayKey      string    `json:"dayKey" validate:"required,daykey"`
	CreatedAt   Timestamp `json:"createdAt" validate:"required"`
	UpdatedAt   Timestamp `json:"updatedAt" validate:"required"`
}

// Patch lists the fields an update should change. Nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	Day         *time.Time
}

// Ref returns a pointer to v, for building a Patch inline.
func Ref[T any](v T) *T {
	return &v
}

// IsEmpty reports whether the patch changes no field.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil && p.Day == nil
}

var now = time.Now

// New creates a pending item for the given day. A zero day means today.
func New(title, description string, day time.Time) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, invalidArgument("title is required")
	}
	if day.IsZero() {
		day = now()
	}
	key, err := dayKeyFor(day)
	if err != nil {
		return Item{}, err
	}
	ts := Stamp(now())
	return Item{
		ID:          NewID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
		DayKey:      key,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// Update returns a copy of existing with the patch applied and UpdatedAt
// refreshed. UpdatedAt moves even when the patch is empty.
func Update(existing Item, patch Patch) (Item, error) {
	if existing.ID == "" {
		return Item{}, fmt.Errorf("%w: item has no id", ErrInvalidState)
	}
	if err := Validate(existing); err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	next := existing
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Item{}, invalidArgument("title cannot be empty")
		}
		next.Title = title
	}
	if patch.Description != nil {
		next.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Completed != nil {
		next.Completed = *patch.Completed
	}
	if patch.Day != nil {
		if patch.Day.IsZero() {
			return Item{}, invalidArgument("day is not a calendar date")
		}
		key, err := dayKeyFor(*patch.Day)
		if err != nil {
			return Item{}, err
		}
		next.DayKey = key
	}
	next.UpdatedAt = Stamp(now())
	return next, nil
}

// dayKeyFor rejects days whose key would not be four-digit-year YYYY-MM-DD.
func dayKeyFor(day time.Time) (string, error) {
	key := timeutil.DayKey(day)
	if !timeutil.IsDayKey(key) {
		return "", invalidArgument("day %s is outside years 0000 to 9999", key)
	}
	return key, nil
}

// ToggleCompleted flips the completion flag.
func ToggleCompleted(existing Item) (Item, error) {
	return Update(existing, Patch{Completed: Ref(!existing.Completed)})
}

// Day returns the item's day as midnight local time.
func (i Item) Day() (time.Time, error) {
	return timeutil.ParseDayKey(i.DayKey)
}

func (i Item) String() string {
	mark := " "
	if i.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s (%s)", mark, i.Title, i.DayKey)
}
