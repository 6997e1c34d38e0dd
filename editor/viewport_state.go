package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal cell offset in WrapNone mode.
	LeftCellOffset int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode

	// TotalRows is the number of visual rows in the document.
	TotalRows int
	// ContentWidth is the number of cells available per row.
	ContentWidth int
	// MaxLineCells is the widest logical line, in cells.
	MaxLineCells int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	layout := (&m).ensureLayout()
	left := 0
	if m.cfg.WrapMode == WrapNone {
		left = max(m.xOffset, 0)
	}
	return ViewportState{
		TopVisualRow:   max(m.viewport.YOffset, 0),
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: left,
		WrapMode:       m.cfg.WrapMode,
		TotalRows:      len(layout.rows),
		ContentWidth:   m.contentWidth(),
		MaxLineCells:   layout.maxCells,
	}
}

// VerticalFraction returns the visible span as fractions of the document
// height, the way a scrollbar reports it.
func (vs ViewportState) VerticalFraction() (first, last float64) {
	return fraction(vs.TopVisualRow, vs.VisibleRows, vs.TotalRows)
}

// HorizontalFraction is VerticalFraction for the cell axis. Wrapped views
// always report the full span.
func (vs ViewportState) HorizontalFraction() (first, last float64) {
	if vs.WrapMode != WrapNone {
		return 0, 1
	}
	return fraction(vs.LeftCellOffset, vs.ContentWidth, vs.MaxLineCells+1)
}

func fraction(offset, visible, total int) (float64, float64) {
	if total <= 0 || visible >= total {
		return 0, 1
	}
	first := float64(offset) / float64(total)
	last := float64(min(offset+visible, total)) / float64(total)
	return first, last
}
