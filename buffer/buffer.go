package buffer

import (
	"strings"

	"github.com/iw2rmb/escode/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the document state: text, caret and selection.
//
// A Buffer is never shared between documents. New and Open in the shell
// replace the whole Buffer instead of clearing it.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the caret at 1.0.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// LineCount returns the number of logical lines. An empty buffer has one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// Lines returns a copy of every logical line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

// Version increases on every effective mutation of text, caret or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increases only when text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

// CursorAddress returns the caret in "line.column" form.
func (b *Buffer) CursorAddress() Address { return AddressOf(b.cursor) }

// SetCursor moves the caret to p (clamped) and clears the selection.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	change := b.beginChange()
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection anchor/end without normalization.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r (clamped). The caret moves to r.End.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) && b.cursor == r.End {
		return
	}
	change := b.beginChange()
	b.sel = next
	b.cursor = r.End
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	change := b.beginChange()
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
