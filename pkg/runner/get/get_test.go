package get

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/store"
)

func TestGetFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	svc, err := app.Open(ctx, store.NewMemory())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	day := time.Date(2024, time.April, 2, 8, 0, 0, 0, time.Local)
	for _, title := range []string{"b", "c", "a"} {
		if _, err := svc.Add(ctx, title, "", day); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	c := svc.ItemsOnDay("2024-04-02")
	if _, err := svc.Toggle(ctx, c[1].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	var buf bytes.Buffer
	g := Get{
		Day:     "2024-04-02",
		Status:  glyph.Pending,
		Key:     collection.SortTitle,
		Order:   collection.Desc,
		JSON:    true,
		Out:     &buf,
		Service: svc,
	}
	if err := g.Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var got []item.Item
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(got) != 2 || got[0].Title != "b" || got[1].Title != "a" {
		t.Fatalf("got %+v, want pending items b, a", got)
	}
}

func TestGetEmptyDayPrintsNone(t *testing.T) {
	svc, err := app.Open(context.Background(), store.NewMemory())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var buf bytes.Buffer
	g := Get{Day: "2024-04-02", Key: collection.SortCreated, Order: collection.Asc, Out: &buf, Service: svc}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("none")) {
		t.Fatalf("output %q", buf.String())
	}
}
