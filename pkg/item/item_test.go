package item

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock(t *testing.T, times ...time.Time) {
	t.Helper()
	prev := now
	i := 0
	now = func() time.Time {
		ts := times[i]
		if i < len(times)-1 {
			i++
		}
		return ts
	}
	t.Cleanup(func() { now = prev })
}

func TestNewTrimsAndDefaults(t *testing.T) {
	created := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)
	fixedClock(t, created)

	it, err := New("  Pay rent ", "  by noon  ", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Title != "Pay rent" {
		t.Fatalf("expected trimmed title, got %q", it.Title)
	}
	if it.Description != "by noon" {
		t.Fatalf("expected trimmed description, got %q", it.Description)
	}
	if it.Completed {
		t.Fatalf("expected new item to be pending")
	}
	if it.DayKey != "2024-01-05" {
		t.Fatalf("expected day key 2024-01-05, got %s", it.DayKey)
	}
	if it.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !it.CreatedAt.Equal(created) || !it.UpdatedAt.Equal(created) {
		t.Fatalf("expected created/updated at %v, got %v/%v", created, it.CreatedAt, it.UpdatedAt)
	}
	if err := Validate(it); err != nil {
		t.Fatalf("new item should validate: %v", err)
	}
}

func TestNewZeroDayIsToday(t *testing.T) {
	today := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.Local)
	fixedClock(t, today)
	it, err := New("water plants", "", time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.DayKey != "2024-03-09" {
		t.Fatalf("expected today's key, got %s", it.DayKey)
	}
}

func TestNewRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := New(title, "", time.Now()); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("title %q: expected ErrInvalidArgument, got %v", title, err)
		}
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	t0 := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)
	fixedClock(t, t0, t1)

	orig, err := New("Pay rent", "landlord", time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, err := Update(orig, Patch{Title: Ref(" Pay rent today ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Title != "Pay rent today" {
		t.Fatalf("unexpected title %q", next.Title)
	}
	if next.Description != "landlord" || next.DayKey != orig.DayKey || next.Completed {
		t.Fatalf("unpatched fields changed: %+v", next)
	}
	if next.ID != orig.ID || !next.CreatedAt.Equal(orig.CreatedAt.Time) {
		t.Fatalf("identity changed: %+v", next)
	}
	if !next.UpdatedAt.Equal(t1) {
		t.Fatalf("expected updatedAt %v, got %v", t1, next.UpdatedAt)
	}
	if orig.Title != "Pay rent" {
		t.Fatalf("original item mutated: %+v", orig)
	}
}

func TestUpdateEmptyPatchRefreshesUpdatedAt(t *testing.T) {
	t0 := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	fixedClock(t, t0, t0.Add(time.Second))
	orig, _ := New("a", "", time.Now())
	next, err := Update(orig, Patch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !next.UpdatedAt.After(orig.UpdatedAt.Time) {
		t.Fatalf("expected updatedAt to move forward")
	}
}

func TestUpdateDayRecomputesKey(t *testing.T) {
	orig, _ := New("a", "", time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local))
	next, err := Update(orig, Patch{Day: Ref(time.Date(2024, 1, 6, 18, 0, 0, 0, time.Local))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.DayKey != "2024-01-06" {
		t.Fatalf("expected 2024-01-06, got %s", next.DayKey)
	}
}

func TestUpdateRejections(t *testing.T) {
	valid, _ := New("a", "", time.Now())

	tests := []struct {
		name     string
		existing Item
		patch    Patch
		want     error
	}{
		{name: "blank title", existing: valid, patch: Patch{Title: Ref("  ")}, want: ErrInvalidArgument},
		{name: "zero day", existing: valid, patch: Patch{Day: Ref(time.Time{})}, want: ErrInvalidArgument},
		{name: "five digit year", existing: valid, patch: Patch{Day: Ref(time.Date(10000, 1, 1, 0, 0, 0, 0, time.Local))}, want: ErrInvalidArgument},
		{name: "negative year", existing: valid, patch: Patch{Day: Ref(time.Date(-1, 1, 1, 0, 0, 0, 0, time.Local))}, want: ErrInvalidArgument},
		{name: "no id", existing: Item{Title: "a"}, patch: Patch{}, want: ErrInvalidState},
		{name: "bad shape", existing: Item{ID: "x", Title: "a", DayKey: "tomorrow"}, patch: Patch{}, want: ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Update(tt.existing, tt.patch); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewRejectsDayOutsideFourDigitYears(t *testing.T) {
	_, err := New("a", "", time.Date(10000, 1, 1, 0, 0, 0, 0, time.Local))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestToggleCompleted(t *testing.T) {
	orig, _ := New("a", "", time.Now())
	done, err := ToggleCompleted(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done.Completed {
		t.Fatalf("expected completed")
	}
	back, err := ToggleCompleted(done)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Completed {
		t.Fatalf("expected pending again")
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	err := Validate(Item{Title: "  ", DayKey: "2024/01/05"})
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedError, got %v", err)
	}
	got := strings.Join(malformed.Fields(), ",")
	want := "id,title,dayKey,createdAt,updatedAt"
	if got != want {
		t.Fatalf("expected fields %s, got %s", want, got)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected errors.Is ErrMalformed")
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := Stamp(time.Date(2024, 1, 5, 9, 30, 0, 0, time.FixedZone("x", 3600)))
	b, err := ts.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-01-05T08:30:00.000Z"` {
		t.Fatalf("unexpected encoding %s", b)
	}
	var back Timestamp
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", back, ts)
	}
}
