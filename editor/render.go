package editor

import (
	"strings"

	"github.com/iw2rmb/escode/buffer"
)

func (m *Model) renderContent() string {
	layout := m.ensureLayout()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	width := m.contentWidth()
	left := max(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	out := make([]string, 0, len(layout.rows))
	for _, ref := range layout.rows {
		line := layout.lines[ref.logicalRow]
		seg := line.segments[ref.segmentIndex]

		lastSeg := ref.segmentIndex == len(line.segments)-1
		l, r := left, right
		if m.cfg.WrapMode != WrapNone {
			l, r = seg.startCell, seg.endCell
			if lastSeg {
				// Leave room for the end-of-line caret.
				r = seg.endCell + 1
				if width > 0 {
					r = seg.startCell + width
				}
			}
		}
		out = append(out, renderVisualLine(m.cfg.Style, line.visual, ref.logicalRow, cursor, m.focused, sel, selOK, l, r, lastSeg, width))
	}
	return strings.Join(out, "\n")
}

// renderVisualLine draws the cells [left,right) of vl. A wide grapheme cut by
// the window is drawn as blanks so columns stay aligned.
func renderVisualLine(
	st Style,
	vl VisualLine,
	row int,
	cursor buffer.Pos,
	focused bool,
	sel buffer.Range,
	selOK bool,
	left, right int,
	lastSeg bool,
	width int,
) string {
	hasCursor := focused && row == cursor.Row
	cursorCol := -1
	if hasCursor {
		cursorCol = clampInt(cursor.Col, 0, vl.RawLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, vl.RawLen)

	// A caret at the end of the line is drawn as a placeholder cell. When the
	// row is full the last visible grapheme carries it instead.
	eol := hasCursor && cursorCol == vl.RawLen && lastSeg
	eolCell := vl.VisualLen()
	eolFallback := -1
	if eol && width > 0 && eolCell >= right && len(vl.Tokens) > 0 {
		eolFallback = vl.Tokens[len(vl.Tokens)-1].Col
	}

	var sb strings.Builder
	for _, tok := range vl.Tokens {
		spanL := max(tok.StartCell, left)
		spanR := min(tok.StartCell+tok.CellWidth, right)
		if spanL >= spanR {
			continue
		}

		style := st.Text
		switch {
		case hasCursor && (tok.Col == cursorCol || tok.Col == eolFallback):
			style = st.Cursor
		case hasSel && tok.Col >= selStart && tok.Col < selEnd:
			style = st.Selection
		}

		text := tok.Text
		if spanR-spanL != tok.CellWidth {
			text = strings.Repeat(" ", spanR-spanL)
		}
		sb.WriteString(style.Render(text))
	}
	if eol && eolFallback < 0 && eolCell >= left && eolCell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, rawLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, rawLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, rawLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, rawLen)
	}
	return start, end, start < end
}
