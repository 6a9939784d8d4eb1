package collection

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/daybook/pkg/item"
)

func TestMarshalRoundTrip(t *testing.T) {
	c := sample(t)
	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(Days(back), Days(c)) {
		t.Fatalf("days differ: %v vs %v", Days(back), Days(c))
	}
	for _, day := range Days(c) {
		want := ItemsOnDay(c, day)
		got := ItemsOnDay(back, day)
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d items, got %d", day, len(want), len(got))
		}
		for i := range want {
			w, g := want[i], got[i]
			if w.ID != g.ID || w.Title != g.Title || w.Description != g.Description ||
				w.Completed != g.Completed || w.DayKey != g.DayKey ||
				w.CreatedAt.String() != g.CreatedAt.String() || w.UpdatedAt.String() != g.UpdatedAt.String() {
				t.Fatalf("%s[%d]: expected %+v, got %+v", day, i, w, g)
			}
		}
	}
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(Empty())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected {}, got %s", data)
	}
}

func TestMarshalFieldNames(t *testing.T) {
	data, err := Marshal(mustInsert(t, Empty(), newItem(t, "a", "x", "2024-01-05")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"id"`, `"title"`, `"description"`, `"completed"`, `"dayKey"`, `"createdAt"`, `"updatedAt"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected %s in %s", key, data)
		}
	}
}

func TestUnmarshalEmptyInputs(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "{}", `{"2024-01-05":[]}`} {
		c, err := Unmarshal([]byte(in))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if c.Len() != 0 || len(Days(c)) != 0 {
			t.Fatalf("%q: expected empty collection", in)
		}
	}
}

func TestUnmarshalReportsEveryBadRecord(t *testing.T) {
	blob := `{
		"2024-01-05": [
			{"id":"a","title":"ok","description":"","completed":false,"dayKey":"2024-01-05","createdAt":"2024-01-05T09:00:00.000Z","updatedAt":"2024-01-05T09:00:00.000Z"},
			{"id":"b","title":"","description":"","completed":"no","dayKey":"2024-01-05","createdAt":"2024-01-05T09:00:00.000Z","updatedAt":"2024-01-05T09:00:00.000Z"}
		],
		"2024-01-06": [
			{"id":"c","title":"wrong day","description":"","completed":false,"dayKey":"2024-01-05","createdAt":"2024-01-05T09:00:00.000Z","updatedAt":"2024-01-05T09:00:00.000Z"}
		],
		"someday": []
	}`
	_, err := Unmarshal([]byte(blob))
	var malformed *item.MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
	got := strings.Join(malformed.Fields(), ",")
	want := "2024-01-05[1].title,2024-01-05[1].completed,2024-01-06[0].dayKey,someday"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestUnmarshalRejectsDuplicateIDs(t *testing.T) {
	rec := func(day string) string {
		return `{"id":"a","title":"t","description":"","completed":false,"dayKey":"` + day +
			`","createdAt":"2024-01-05T09:00:00.000Z","updatedAt":"2024-01-05T09:00:00.000Z"}`
	}
	blob := `{"2024-01-05":[` + rec("2024-01-05") + `],"2024-01-06":[` + rec("2024-01-06") + `]}`
	if _, err := Unmarshal([]byte(blob)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("expected decode error")
	}
}
