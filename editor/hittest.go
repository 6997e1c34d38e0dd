package editor

import "github.com/iw2rmb/escode/buffer"

// ScreenToDoc maps viewport-local cell coordinates to a document position.
// (0,0) is the top-left of the visible content. Coordinates outside the
// content clamp into the document.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a document position to viewport-local cell coordinates.
// ok is false when the position is scrolled out of view.
func (m Model) DocToScreen(pos buffer.Pos) (x, y int, ok bool) {
	return (&m).docToScreenPos(pos)
}

func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	layout := m.ensureLayout()
	line, seg, ref, ok := layout.segmentAt(m.viewport.YOffset + max(y, 0))
	if !ok {
		return buffer.Pos{}
	}
	x = max(x, 0)

	if m.cfg.WrapMode == WrapNone {
		return buffer.Pos{Row: ref.logicalRow, Col: line.visual.ColForCell(x + m.xOffset)}
	}
	endCol := line.caretEndCol(ref.segmentIndex)
	if x >= seg.Cells {
		return buffer.Pos{Row: ref.logicalRow, Col: endCol}
	}
	col := clampInt(line.visual.ColForCell(seg.startCell+x), seg.StartCol, endCol)
	return buffer.Pos{Row: ref.logicalRow, Col: col}
}

func (m *Model) docToScreenPos(pos buffer.Pos) (x, y int, ok bool) {
	layout := m.ensureLayout()
	row, cell, ok := layout.caretPosition(pos, m.cfg.WrapMode)
	if !ok {
		return 0, 0, false
	}
	y = row - m.viewport.YOffset
	x = cell
	if m.cfg.WrapMode == WrapNone {
		x -= m.xOffset
	}
	visible := y >= 0 && y < m.visibleRowCount() && x >= 0 && x < m.contentWidth()
	return x, y, visible
}
