package glyph

import "testing"

func TestParseStatus(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Status
		wantErr bool
	}{
		"empty":     {in: "", want: Any},
		"any":       {in: "any", want: Any},
		"pending":   {in: "pending", want: Pending},
		"plus":      {in: "+", want: Pending},
		"done":      {in: " DONE ", want: Done},
		"x":         {in: "x", want: Done},
		"completed": {in: "completed", want: Done},
		"unknown":   {in: "later", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseStatus(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseStatus(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	if !Any.Matches(true) || !Any.Matches(false) {
		t.Fatal("Any should match every item")
	}
	if !Pending.Matches(false) || Pending.Matches(true) {
		t.Fatal("Pending should match only open items")
	}
	if !Done.Matches(true) || Done.Matches(false) {
		t.Fatal("Done should match only completed items")
	}
}

func TestForPicksGlyphByCompletion(t *testing.T) {
	if got := For(false).Glyph().Symbol; got != "●" {
		t.Fatalf("pending symbol = %q", got)
	}
	if got := For(true).String(); got != "done" {
		t.Fatalf("done meaning = %q", got)
	}
	if len(Legend()) != 2 {
		t.Fatalf("legend has %d glyphs, want 2", len(Legend()))
	}
}
