package buffer

import "testing"

func TestLastChange_TextEdit(t *testing.T) {
	b := New("ab")
	if _, ok := b.LastChange(); ok {
		t.Fatalf("fresh buffer should have no change")
	}
	b.SetCursor(Pos{Col: 1})
	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if !ch.TextChanged() || !ch.CursorMoved() {
		t.Fatalf("flags: text=%v cursor=%v", ch.TextChanged(), ch.CursorMoved())
	}
	if ch.CursorBefore != (Pos{Col: 1}) || ch.CursorAfter != (Pos{Col: 2}) {
		t.Fatalf("cursor before/after=%v/%v", ch.CursorBefore, ch.CursorAfter)
	}
	if len(ch.AppliedEdits) != 1 || ch.AppliedEdits[0].InsertText != "X" {
		t.Fatalf("edits=%+v", ch.AppliedEdits)
	}
	if ch.VersionAfter != b.Version() {
		t.Fatalf("version after=%d, want %d", ch.VersionAfter, b.Version())
	}
}

func TestLastChange_CaretOnly(t *testing.T) {
	b := New("ab")
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if ch.TextChanged() {
		t.Fatalf("caret move should not report a text change")
	}
	if !ch.CursorMoved() {
		t.Fatalf("caret move should report a cursor move")
	}
}

func TestLastChange_ReturnsCopy(t *testing.T) {
	b := New("")
	b.InsertText("a")
	ch, _ := b.LastChange()
	ch.AppliedEdits[0].InsertText = "mutated"
	again, _ := b.LastChange()
	if again.AppliedEdits[0].InsertText != "a" {
		t.Fatalf("LastChange leaked internal state")
	}
}
