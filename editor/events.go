package editor

import "github.com/iw2rmb/escode/buffer"

// ChangeEvent describes the buffer state after an Update that changed it.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Address buffer.Address

	TextChanged bool
	CursorMoved bool

	// Edits holds the text edits of the most recent buffer mutation when
	// TextChanged is set.
	Edits []buffer.AppliedEdit

	Selection struct {
		Range  buffer.Range
		Active bool
	}
}

func buildChangeEvent(b *buffer.Buffer, textChanged, cursorMoved bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Address:     b.CursorAddress(),
		TextChanged: textChanged,
		CursorMoved: cursorMoved,
	}
	if textChanged {
		if ch, ok := b.LastChange(); ok {
			ev.Edits = ch.AppliedEdits
		}
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
