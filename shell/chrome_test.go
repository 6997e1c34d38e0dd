package shell

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/escode/gutter"
)

func TestThumbSpan(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		first, last float64
		start, end  int
	}{
		{name: "everything visible", n: 10, first: 0, last: 1, start: 0, end: 10},
		{name: "top half", n: 10, first: 0, last: 0.5, start: 0, end: 5},
		{name: "tiny window keeps one cell", n: 10, first: 0.42, last: 0.43, start: 4, end: 5},
		{name: "at the end", n: 10, first: 0.95, last: 1, start: 9, end: 10},
		{name: "out of range is clamped", n: 4, first: -1, last: 2, start: 0, end: 4},
		{name: "empty track", n: 0, first: 0, last: 1, start: 0, end: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := thumbSpan(tt.n, tt.first, tt.last)
			if start != tt.start || end != tt.end {
				t.Fatalf("thumbSpan(%d, %v, %v) = %d,%d; want %d,%d", tt.n, tt.first, tt.last, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestBars(t *testing.T) {
	plain := lipgloss.NewStyle()
	if got, want := horizontalBar(4, 0.5, 1, plain, plain), "░░██"; got != want {
		t.Fatalf("horizontalBar: got %q, want %q", got, want)
	}
	if got, want := verticalBar(3, 0, 1.0/3, plain, plain), "█\n░\n░"; got != want {
		t.Fatalf("verticalBar: got %q, want %q", got, want)
	}
}

func TestGutterView_PlacesLabelsOnTheirRows(t *testing.T) {
	v := &gutterView{}
	v.Replace(gutter.Snapshot{Labels: []gutter.Label{
		{Line: 1, Y: 0},
		{Line: 2, Y: 40},
		{Line: 10, Y: 60},
	}})

	got := strings.Split(v.render(5, 16, 6, lipgloss.NewStyle()), "\n")
	want := []string{"    1 ", "      ", "    2 ", "   10 ", "      "}
	if len(got) != len(want) {
		t.Fatalf("rows: got %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if v.replaced != 1 {
		t.Fatalf("replaced: got %d, want 1", v.replaced)
	}
}
