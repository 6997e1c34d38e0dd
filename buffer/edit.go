package buffer

import (
	"strings"

	"github.com/iw2rmb/escode/internal/grapheme"
)

// InsertText inserts s at the caret, or replaces the active selection.
// The caret ends up after the inserted text.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline inserts a line break at the caret, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with the next line.
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// SelectedText returns the text of the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

func (b *Buffer) edit(r Range, text string) {
	change := b.beginChange()
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	prefix := b.lines[startRow][:startCol]
	suffix := b.lines[endRow][endCol:]

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
