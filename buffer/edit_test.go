package buffer

import "testing"

func TestInsertText_AdvancesCaret(t *testing.T) {
	b := New("ac")
	b.SetCursor(Pos{Col: 1})
	b.InsertText("b")
	if got := b.Text(); got != "abc" {
		t.Fatalf("text=%q, want %q", got, "abc")
	}
	if got := b.Cursor(); got != (Pos{Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
	if b.TextVersion() != 1 {
		t.Fatalf("text version=%d, want 1", b.TextVersion())
	}
}

func TestInsertText_MultiLine(t *testing.T) {
	b := New("xy")
	b.SetCursor(Pos{Col: 1})
	b.InsertText("1\n2\n3")
	if got := b.Text(); got != "x1\n2\n3y" {
		t.Fatalf("text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("cursor=%v, want (2,1)", got)
	}
}

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world")
	b.SetSelection(Range{Start: Pos{Col: 0}, End: Pos{Col: 5}})
	b.InsertText("bye")
	if got := b.Text(); got != "bye world" {
		t.Fatalf("text=%q", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection should be cleared after insert")
	}
}

func TestInsertText_EmptyDeletesSelectionOnly(t *testing.T) {
	b := New("abc")
	v := b.Version()
	b.InsertText("")
	if b.Version() != v {
		t.Fatalf("empty insert without selection should be a no-op")
	}
	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 3}})
	b.InsertText("")
	if got := b.Text(); got != "a" {
		t.Fatalf("text=%q, want %q", got, "a")
	}
}

func TestDeleteBackward(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.DeleteBackward()
	if got := b.Text(); got != "abcd" {
		t.Fatalf("join: text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{Col: 2}) {
		t.Fatalf("join: cursor=%v", got)
	}

	b.DeleteBackward()
	if got := b.Text(); got != "acd" {
		t.Fatalf("text=%q", got)
	}

	b.SetCursor(Pos{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v {
		t.Fatalf("backspace at 1.0 should be a no-op")
	}
}

func TestDeleteForward(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Col: 2})
	b.DeleteForward()
	if got := b.Text(); got != "abcd" {
		t.Fatalf("join: text=%q", got)
	}
	b.DeleteForward()
	if got := b.Text(); got != "abd" {
		t.Fatalf("text=%q", got)
	}

	b.SetCursor(Pos{Col: 3})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at end of buffer should be a no-op")
	}
}

func TestEdit_GraphemeClusters(t *testing.T) {
	b := New("aéb")
	b.SetCursor(Pos{Col: 2})
	b.DeleteBackward()
	if got := b.Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
}
