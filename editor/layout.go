package editor

import "github.com/iw2rmb/escode/buffer"

type layoutKey struct {
	textVersion  uint64
	wrapMode     WrapMode
	tabWidth     int
	contentWidth int
}

type layoutRow struct {
	logicalRow   int
	segmentIndex int
}

type layoutLine struct {
	raw    string
	visual VisualLine

	segments       []wrappedSegment
	firstVisualRow int
}

// layoutCache holds the wrapped rows of the whole document. It is rebuilt
// only when the text or a layout input changes.
type layoutCache struct {
	valid bool
	key   layoutKey

	lines    []layoutLine
	rows     []layoutRow
	maxCells int
}

func (m *Model) invalidateLayout() {
	m.layout.valid = false
}

func (m *Model) layoutKey() layoutKey {
	return layoutKey{
		textVersion:  m.buf.TextVersion(),
		wrapMode:     m.cfg.WrapMode,
		tabWidth:     m.cfg.TabWidth,
		contentWidth: m.contentWidth(),
	}
}

func (m *Model) ensureLayout() layoutCache {
	key := m.layoutKey()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	lines := m.buf.Lines()
	cache := layoutCache{
		valid: true,
		key:   key,
		lines: make([]layoutLine, 0, len(lines)),
		rows:  make([]layoutRow, 0, len(lines)),
	}
	for row, raw := range lines {
		visual := BuildVisualLine(raw, m.cfg.TabWidth)
		segments := wrapSegments(visual, m.cfg.WrapMode, key.contentWidth)
		cache.lines = append(cache.lines, layoutLine{
			raw:            raw,
			visual:         visual,
			segments:       segments,
			firstVisualRow: len(cache.rows),
		})
		for i := range segments {
			cache.rows = append(cache.rows, layoutRow{logicalRow: row, segmentIndex: i})
		}
		cache.maxCells = max(cache.maxCells, visual.VisualLen())
	}

	m.layout = cache
	return cache
}

func (c layoutCache) clampVisualRow(row int) int {
	return clampInt(row, 0, len(c.rows)-1)
}

func (c layoutCache) segmentAt(visualRow int) (line layoutLine, seg wrappedSegment, ref layoutRow, ok bool) {
	if len(c.rows) == 0 {
		return layoutLine{}, wrappedSegment{}, layoutRow{}, false
	}
	ref = c.rows[c.clampVisualRow(visualRow)]
	line = c.lines[ref.logicalRow]
	return line, line.segments[ref.segmentIndex], ref, true
}

// segmentIndexForCell picks the segment showing cell. A caret at the end of
// a line belongs to the last segment.
func (l layoutLine) segmentIndexForCell(cell int) int {
	for i, seg := range l.segments {
		if cell < seg.endCell {
			return i
		}
	}
	return len(l.segments) - 1
}

// caretPosition returns the visual row of pos and its cell. The cell is
// relative to the segment start when wrapping, absolute otherwise.
func (c layoutCache) caretPosition(pos buffer.Pos, wrap WrapMode) (visualRow, cell int, ok bool) {
	if len(c.lines) == 0 {
		return 0, 0, false
	}
	line := c.lines[clampInt(pos.Row, 0, len(c.lines)-1)]
	abs := line.visual.CellForCol(pos.Col)
	segIdx := line.segmentIndexForCell(abs)
	if wrap == WrapNone {
		return line.firstVisualRow + segIdx, abs, true
	}
	return line.firstVisualRow + segIdx, abs - line.segments[segIdx].startCell, true
}

// caretEndCol is the last caret column that still renders on the segment.
// Columns past it belong to the next segment.
func (l layoutLine) caretEndCol(segIdx int) int {
	seg := l.segments[segIdx]
	if segIdx == len(l.segments)-1 {
		return seg.EndCol
	}
	return max(seg.EndCol-1, seg.StartCol)
}
