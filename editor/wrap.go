package editor

import "github.com/iw2rmb/escode/internal/grapheme"

// wrappedSegment is one visual row of a logical line.
type wrappedSegment struct {
	StartCol int
	EndCol   int
	Cells    int

	startCell int
	endCell   int
}

type wrapUnit struct {
	startCell int
	endCell   int
	width     int

	isWhitespace bool
	isPunct      bool
}

func wrapSegments(vl VisualLine, mode WrapMode, width int) []wrappedSegment {
	visualLen := vl.VisualLen()
	if width <= 0 || mode == WrapNone || visualLen <= width {
		return []wrappedSegment{{
			StartCol:  0,
			EndCol:    vl.RawLen,
			Cells:     visualLen,
			startCell: 0,
			endCell:   visualLen,
		}}
	}

	units := wrapUnits(vl)
	segments := make([]wrappedSegment, 0, 1+visualLen/width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := max(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = keepLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(units))
		}

		segments = append(segments, segmentFromUnits(vl, units, start, end))
		start = end
	}
	return segments
}

// wrapUnits returns one unit per grapheme. Expanded tabs stay whole.
func wrapUnits(vl VisualLine) []wrapUnit {
	units := make([]wrapUnit, 0, len(vl.Tokens))
	for _, tok := range vl.Tokens {
		if tok.CellWidth <= 0 {
			continue
		}
		ws := grapheme.IsSpace(tok.Text) || isBlank(tok.Text)
		units = append(units, wrapUnit{
			startCell:    tok.StartCell,
			endCell:      tok.StartCell + tok.CellWidth,
			width:        tok.CellWidth,
			isWhitespace: ws,
			isPunct:      !ws && grapheme.IsPunct(tok.Text),
		})
	}
	return units
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}

func segmentFromUnits(vl VisualLine, units []wrapUnit, start, end int) wrappedSegment {
	startCell := units[start].startCell
	endCell := max(units[end-1].endCell, startCell)

	startCol := vl.ColForCell(startCell)
	endCol := vl.RawLen
	if endCell < vl.VisualLen() {
		endCol = max(vl.ColForCell(endCell), startCol)
	}

	return wrappedSegment{
		StartCol:  startCol,
		EndCol:    endCol,
		Cells:     endCell - startCell,
		startCell: startCell,
		endCell:   endCell,
	}
}
