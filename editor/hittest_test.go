package editor

import (
	"testing"

	"github.com/iw2rmb/escode/buffer"
)

func TestHitTest_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m = m.SetSize(10, 2)
	m = m.ScrollTo(1, 0)

	if got := m.ScreenToDoc(2, 0); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("pos at (2,0) with top row 1: got %v, want %v", got, buffer.Pos{Row: 1, Col: 2})
	}
	if got := m.ScreenToDoc(999, 0); got != (buffer.Pos{Row: 1, Col: 3}) {
		t.Fatalf("pos at (999,0): got %v, want %v", got, buffer.Pos{Row: 1, Col: 3})
	}
	if got := m.ScreenToDoc(-4, 99); got != (buffer.Pos{Row: 2, Col: 0}) {
		t.Fatalf("pos at (-4,99): got %v, want %v", got, buffer.Pos{Row: 2, Col: 0})
	}
}

func TestHitTest_WrappedRowsStayOnTheirRow(t *testing.T) {
	m := New(Config{Text: "abcdef", WrapMode: WrapGrapheme})
	m = m.SetSize(3, 5)

	if got := m.ScreenToDoc(9, 0); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("past end of first row: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}
	if got := m.ScreenToDoc(1, 1); got != (buffer.Pos{Row: 0, Col: 4}) {
		t.Fatalf("second row: got %v, want %v", got, buffer.Pos{Row: 0, Col: 4})
	}
	if got := m.ScreenToDoc(9, 1); got != (buffer.Pos{Row: 0, Col: 6}) {
		t.Fatalf("past end of last row: got %v, want %v", got, buffer.Pos{Row: 0, Col: 6})
	}
}

func TestDocToScreen_RoundTripAndVisibility(t *testing.T) {
	m := New(Config{Text: "abcdef\nxyz", WrapMode: WrapGrapheme})
	m = m.SetSize(3, 2)

	x, y, ok := m.DocToScreen(buffer.Pos{Row: 0, Col: 4})
	if !ok || x != 1 || y != 1 {
		t.Fatalf("DocToScreen(0,4): got (%d,%d,%v), want (1,1,true)", x, y, ok)
	}
	if got := m.ScreenToDoc(x, y); got != (buffer.Pos{Row: 0, Col: 4}) {
		t.Fatalf("round trip: got %v", got)
	}

	if _, y, ok := m.DocToScreen(buffer.Pos{Row: 1, Col: 0}); ok || y != 2 {
		t.Fatalf("row below viewport: got y=%d ok=%v, want y=2 ok=false", y, ok)
	}
}
