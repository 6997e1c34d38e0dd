package editor

// DefaultRowUnits is the height of one rendered row in surface units.
const DefaultRowUnits = 16

// Surface is the visible viewport expressed in surface units, where every
// rendered row is rowUnits tall. It satisfies gutter.Surface.
type Surface struct {
	rowUnits int
	height   int
	// lines holds the 1-based logical line of each visible row.
	lines []int
}

// Surface captures the visible rows. rowUnits <= 0 selects DefaultRowUnits.
func (m Model) Surface(rowUnits int) Surface {
	if rowUnits <= 0 {
		rowUnits = DefaultRowUnits
	}
	layout := (&m).ensureLayout()
	h := m.visibleRowCount()
	top := clampInt(m.viewport.YOffset, 0, len(layout.rows))
	end := min(top+h, len(layout.rows))

	// A final newline terminates the last line instead of starting a new
	// one, so the empty row after it reports the line it ends.
	n := m.buf.LineCount()
	terminated := n > 1 && m.buf.Line(n-1) == ""

	lines := make([]int, 0, max(end-top, 0))
	for _, ref := range layout.rows[top:end] {
		line := ref.logicalRow + 1
		if terminated && line == n {
			line = n - 1
		}
		lines = append(lines, line)
	}
	return Surface{rowUnits: rowUnits, height: h * rowUnits, lines: lines}
}

func (s Surface) Height() int { return s.height }

// RowUnits returns the height of one rendered row.
func (s Surface) RowUnits() int { return s.rowUnits }

// LineAt returns the logical line shown at offset y. Offsets past the last
// row report the last visible line, and an empty surface reports line 1.
func (s Surface) LineAt(y int) int {
	if len(s.lines) == 0 {
		return 1
	}
	if s.rowUnits <= 0 {
		return s.lines[0]
	}
	r := clampInt(y/s.rowUnits, 0, len(s.lines)-1)
	return s.lines[r]
}
