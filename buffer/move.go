package buffer

import "github.com/iw2rmb/escode/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, extends the selection; otherwise clears it
}

// Move moves the caret. Rows are logical lines; the editor handles visual
// (wrapped) row movement itself through SetCursor.
func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(b.sel, nextSel) {
		return
	}

	change := b.beginChange()
	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
	b.commitChange(change)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: len(b.lines[row-1])}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 && p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) && p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, Col: min(col, len(b.lines[row-1]))}
	case DirDown:
		if row == len(b.lines)-1 {
			return p
		}
		return Pos{Row: row + 1, Col: min(col, len(b.lines[row+1]))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: len(b.lines[lastRow])}
	default:
		return p
	}
}

// Word boundaries: skip whitespace, then skip non-whitespace. A line break is
// a hard boundary.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
