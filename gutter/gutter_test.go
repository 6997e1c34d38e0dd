package gutter

import (
	"fmt"
	"strings"
	"testing"
)

// rowSurface renders rows (1-based logical line per rendered row), each
// rowUnits tall, with visible rendered rows in view.
type rowSurface struct {
	rows     []int
	rowUnits int
	visible  int
	top      int
}

func (s rowSurface) Height() int { return s.visible * s.rowUnits }

func (s rowSurface) LineAt(y int) int {
	i := s.top + y/s.rowUnits
	if i >= len(s.rows) {
		i = len(s.rows) - 1
	}
	return s.rows[i]
}

func linesSurface(n, visible int) rowSurface {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	return rowSurface{rows: rows, rowUnits: 16, visible: visible}
}

type recordingDisplay struct {
	calls []Snapshot
}

func (d *recordingDisplay) Replace(s Snapshot) { d.calls = append(d.calls, s) }

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		line, width int
		want        string
	}{
		{1, 6, "    1\n"},
		{12, 6, "   12\n"},
		{123456, 6, "123456\n"},
		{7, 1, "7\n"},
	}
	for _, tc := range cases {
		if got := FormatLabel(tc.line, tc.width); got != tc.want {
			t.Fatalf("FormatLabel(%d,%d)=%q, want %q", tc.line, tc.width, got, tc.want)
		}
	}
}

func TestSample_UnwrappedLinesNumberedConsecutively(t *testing.T) {
	for _, n := range []int{1, 2, 5, 30} {
		s := linesSurface(n, n)
		snap := Sample(s, Options{})
		lines := snap.Lines()
		if len(lines) != n {
			t.Fatalf("n=%d: labels=%d, want %d", n, len(lines), n)
		}
		for i, l := range lines {
			if l != i+1 {
				t.Fatalf("n=%d: label %d is line %d", n, i, l)
			}
		}
	}
}

func TestSample_TwoLineScenario(t *testing.T) {
	// "abc\ndef\n": the row after the final newline reports line 2.
	s := rowSurface{rows: []int{1, 2, 2}, rowUnits: 16, visible: 10}
	snap := Sample(s, Options{})
	if want := "    1\n    2\n"; snap.Text != want {
		t.Fatalf("text=%q, want %q", snap.Text, want)
	}
}

func TestSample_WrappedLineLabeledOnce(t *testing.T) {
	for _, k := range []int{2, 3, 7} {
		rows := make([]int, 0, k+1)
		for i := 0; i < k; i++ {
			rows = append(rows, 1)
		}
		rows = append(rows, 2)
		s := rowSurface{rows: rows, rowUnits: 16, visible: k + 1}
		snap := Sample(s, Options{})
		if got := snap.Lines(); fmt.Sprint(got) != "[1 2]" {
			t.Fatalf("k=%d: lines=%v, want [1 2]", k, got)
		}
		if snap.Labels[1].Y < k*16 {
			t.Fatalf("k=%d: line 2 labeled at y=%d, before its row", k, snap.Labels[1].Y)
		}
	}
}

func TestSample_ScrolledViewportStartsAtTopLine(t *testing.T) {
	s := linesSurface(100, 3)
	s.top = 41
	snap := Sample(s, Options{})
	if got := fmt.Sprint(snap.Lines()); got != "[42 43 44]" {
		t.Fatalf("lines=%s", got)
	}
}

func TestSample_ViewportTallerThanContent(t *testing.T) {
	s := linesSurface(2, 10)
	snap := Sample(s, Options{})
	if got := fmt.Sprint(snap.Lines()); got != "[1 2]" {
		t.Fatalf("lines=%s, want [1 2]", got)
	}
}

func TestSample_EmptyBufferSingleLabel(t *testing.T) {
	s := rowSurface{rows: []int{1}, rowUnits: 16, visible: 5}
	snap := Sample(s, Options{})
	if snap.Text != "    1\n" {
		t.Fatalf("text=%q", snap.Text)
	}
}

func TestSample_ZeroHeight(t *testing.T) {
	s := linesSurface(3, 0)
	snap := Sample(s, Options{})
	if snap.Text != "" || len(snap.Labels) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if got := Sample(nil, Options{}); got.Text != "" {
		t.Fatalf("nil surface: %+v", got)
	}
}

func TestSample_ThinRowsCanSkipLines(t *testing.T) {
	// Rows thinner than the step are an accepted approximation.
	s := rowSurface{rows: []int{1, 2, 3, 4}, rowUnits: 5, visible: 4}
	snap := Sample(s, Options{Step: 10})
	if got := fmt.Sprint(snap.Lines()); got != "[1 3]" {
		t.Fatalf("lines=%s, want [1 3]", got)
	}
}

func TestSample_CustomWidth(t *testing.T) {
	s := linesSurface(2, 2)
	snap := Sample(s, Options{Width: 3})
	if snap.Text != " 1\n 2\n" {
		t.Fatalf("text=%q", snap.Text)
	}
}

func TestRefresh_IdempotentOnUnchangedViewport(t *testing.T) {
	d := &recordingDisplay{}
	g := New(Options{}, d)
	s := linesSurface(5, 3)

	if !g.Refresh(s) {
		t.Fatalf("first refresh should redraw")
	}
	for i := 0; i < 5; i++ {
		if g.Refresh(s) {
			t.Fatalf("refresh %d redrew an unchanged viewport", i)
		}
	}
	if len(d.calls) != 1 || g.Redraws() != 1 {
		t.Fatalf("display calls=%d redraws=%d, want 1", len(d.calls), g.Redraws())
	}
	if g.Text() != d.calls[0].Text {
		t.Fatalf("cache=%q, display=%q", g.Text(), d.calls[0].Text)
	}
}

func TestRefresh_RedrawsOnScroll(t *testing.T) {
	d := &recordingDisplay{}
	g := New(Options{}, d)
	s := linesSurface(10, 3)
	g.Refresh(s)
	s.top = 1
	if !g.Refresh(s) {
		t.Fatalf("scroll should redraw")
	}
	if got := fmt.Sprint(d.calls[1].Lines()); got != "[2 3 4]" {
		t.Fatalf("lines after scroll=%s", got)
	}
}

func TestRefresh_ShrinkToZeroClearsDisplay(t *testing.T) {
	d := &recordingDisplay{}
	g := New(Options{}, d)
	s := linesSurface(3, 3)
	g.Refresh(s)
	s.visible = 0
	if !g.Refresh(s) {
		t.Fatalf("collapsing the viewport should redraw")
	}
	if d.calls[1].Text != "" {
		t.Fatalf("text=%q, want empty", d.calls[1].Text)
	}
}

func TestReset_ForcesRedraw(t *testing.T) {
	d := &recordingDisplay{}
	g := New(Options{}, d)
	s := linesSurface(1, 3)
	g.Refresh(s)
	g.Reset()
	if g.Text() != "" {
		t.Fatalf("reset should drop cache")
	}
	if !g.Refresh(s) {
		t.Fatalf("refresh after reset should redraw")
	}
	if len(d.calls) != 2 {
		t.Fatalf("display calls=%d, want 2", len(d.calls))
	}
}

func TestNew_NilDisplay(t *testing.T) {
	g := New(Options{Step: -1, Width: 0}, nil)
	if g.Options() != (Options{Step: DefaultStep, Width: DefaultWidth}) {
		t.Fatalf("options=%+v", g.Options())
	}
	g.Refresh(linesSurface(2, 2))
	if !strings.HasSuffix(g.Text(), "2\n") {
		t.Fatalf("text=%q", g.Text())
	}
}
