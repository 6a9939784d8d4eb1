package collection

import (
	"reflect"
	"testing"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/item"
)

func TestSortByCompletedAscending(t *testing.T) {
	c := Empty()
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		c = mustInsert(t, c, newItem(t, id, "task", "2024-01-05"))
		if i%2 == 0 {
			c, _ = Toggle(c, id)
		}
	}
	c = mustInsert(t, c, newItem(t, "x", "other day", "2024-01-06"))

	sorted, err := Sort(c, SortCompleted, Asc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ItemsOnDay(sorted, "2024-01-05")
	seenDone := false
	for _, it := range got {
		if it.Completed {
			seenDone = true
		} else if seenDone {
			t.Fatalf("pending item after completed: %v", ids(got))
		}
	}
	if want := []string{"b", "d", "a", "c", "e"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected stable order %v, got %v", want, ids(got))
	}
	if got := ids(ItemsOnDay(sorted, "2024-01-06")); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("items moved across days: %v", got)
	}
}

func TestSortByTitle(t *testing.T) {
	c := mustInsert(t, Empty(),
		newItem(t, "1", "banana", "2024-01-05"),
		newItem(t, "2", "Apple", "2024-01-05"),
		newItem(t, "3", "cherry", "2024-01-05"),
	)
	asc, err := Sort(c, SortTitle, Asc, WithLocale(language.English))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ItemsOnDay(asc, "2024-01-05")); !reflect.DeepEqual(got, []string{"2", "1", "3"}) {
		t.Fatalf("expected locale order Apple, banana, cherry; got %v", got)
	}
	desc, err := Sort(c, SortTitle, Desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ItemsOnDay(desc, "2024-01-05")); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("unexpected desc order %v", got)
	}
}

func TestSortByCreated(t *testing.T) {
	base := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	mk := func(id string, offset time.Duration) item.Item {
		it := newItem(t, id, "task", "2024-01-05")
		it.CreatedAt = item.Stamp(base.Add(offset))
		return it
	}
	c := mustInsert(t, Empty(), mk("late", time.Hour), mk("early", 0), mk("mid", time.Minute))

	asc, err := Sort(c, SortCreated, Asc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ItemsOnDay(asc, "2024-01-05")); !reflect.DeepEqual(got, []string{"early", "mid", "late"}) {
		t.Fatalf("unexpected order %v", got)
	}
	desc, _ := Sort(c, SortCreated, Desc)
	if got := ids(ItemsOnDay(desc, "2024-01-05")); !reflect.DeepEqual(got, []string{"late", "mid", "early"}) {
		t.Fatalf("unexpected desc order %v", got)
	}
	if got := ids(ItemsOnDay(c, "2024-01-05")); !reflect.DeepEqual(got, []string{"late", "early", "mid"}) {
		t.Fatalf("sort modified its input: %v", got)
	}
}

func TestSortRejectsUnknown(t *testing.T) {
	if _, err := Sort(Empty(), "priority", Asc); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := Sort(Empty(), SortTitle, "sideways"); err == nil {
		t.Fatalf("expected error for unknown order")
	}
}

func TestParseSortKeyAndOrder(t *testing.T) {
	if k, err := ParseSortKey(" Title "); err != nil || k != SortTitle {
		t.Fatalf("unexpected %v %v", k, err)
	}
	if k, err := ParseSortKey(""); err != nil || k != SortCreated {
		t.Fatalf("expected default created, got %v %v", k, err)
	}
	if o, err := ParseOrder("DESC"); err != nil || o != Desc {
		t.Fatalf("unexpected %v %v", o, err)
	}
	if _, err := ParseOrder("up"); err == nil {
		t.Fatalf("expected error")
	}
}
