package commands

import (
	"context"
	"testing"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"add", "list", "search", "done", "undo", "toggle", "edit", "move",
		"rm", "clear", "stats", "report", "month", "migrate", "key", "completion", "version"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("missing command %q: %v", name, err)
		}
	}
	if cmd, _, err := root.Find([]string{"get"}); err != nil || cmd.Name() != "list" {
		t.Fatalf("get should alias list, got %v, %v", cmd, err)
	}
}

func execute(t *testing.T, args ...string) {
	t.Helper()
	root := New()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("daybook %v: %v", args, err)
	}
}

func TestAddMoveAndRemove(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYBOOK_PATH", dir)
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)
	t.Setenv("DAYBOOK_KEY", "test-items")

	execute(t, "add", "buy", "milk", "--on", "2024-1-5", "-d", "oat")

	open := func() *app.Service {
		disk, err := store.NewDisk(dir)
		if err != nil {
			t.Fatalf("NewDisk: %v", err)
		}
		svc, err := app.Open(context.Background(), disk, app.WithKey("test-items"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return svc
	}

	items := open().ItemsOnDay("2024-01-05")
	if len(items) != 1 || items[0].Title != "buy milk" || items[0].Description != "oat" {
		t.Fatalf("unexpected items %+v", items)
	}
	id := items[0].ID

	execute(t, "move", id, "2024-1-6")
	execute(t, "done", id)

	svc := open()
	got, ok := svc.Get(id)
	if !ok || got.DayKey != "2024-01-06" || !got.Completed {
		t.Fatalf("after move and done got %+v", got)
	}

	execute(t, "rm", id)
	if n := open().Count(); n != 0 {
		t.Fatalf("count after rm = %d", n)
	}
}

func TestJSONErrorsAreReported(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYBOOK_PATH", dir)
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)

	root := New()
	root.SetArgs([]string{"done", "missing"})
	if err := root.Execute(); err == nil {
		t.Fatal("want error for unknown id")
	}

	root = New()
	root.SetArgs([]string{"--json", "done", "missing"})
	if err := root.Execute(); err != nil {
		t.Fatalf("--json should report the error as output, got %v", err)
	}
}
