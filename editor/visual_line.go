package editor

import (
	"strings"

	"github.com/iw2rmb/escode/internal/grapheme"
)

// VisualToken is one grapheme of a logical line as it is drawn.
type VisualToken struct {
	// Text is the rendered text. Tabs are expanded to spaces.
	Text string
	// Col is the document grapheme column the token renders.
	Col       int
	StartCell int
	CellWidth int
}

// VisualLine maps one logical line between grapheme columns and cells.
type VisualLine struct {
	RawLen int // grapheme length of the logical line

	Tokens []VisualToken

	// cellToCol maps each cell to a document column. Every cell of a wide
	// grapheme maps to the same column.
	cellToCol []int
	// colToCell maps columns 0..RawLen to the first cell of that column.
	colToCell []int
}

func BuildVisualLine(rawLine string, tabWidth int) VisualLine {
	clusters := grapheme.Split(rawLine)
	vl := VisualLine{
		RawLen:    len(clusters),
		Tokens:    make([]VisualToken, 0, len(clusters)),
		colToCell: make([]int, len(clusters)+1),
	}

	cell := 0
	for col, gr := range clusters {
		w := grapheme.Width(gr, cell, tabWidth)
		text := gr
		if gr == "\t" {
			text = strings.Repeat(" ", w)
		}
		vl.Tokens = append(vl.Tokens, VisualToken{
			Text:      text,
			Col:       col,
			StartCell: cell,
			CellWidth: w,
		})
		vl.colToCell[col] = cell
		for i := 0; i < w; i++ {
			vl.cellToCol = append(vl.cellToCol, col)
		}
		cell += w
	}
	vl.colToCell[len(clusters)] = cell
	return vl
}

// VisualLen returns the line width in cells.
func (vl VisualLine) VisualLen() int { return len(vl.cellToCol) }

// ColForCell maps a cell to a document column. Cells past the end map to
// RawLen.
func (vl VisualLine) ColForCell(x int) int {
	if x < 0 {
		x = 0
	}
	if x >= len(vl.cellToCol) {
		return vl.RawLen
	}
	return vl.cellToCol[x]
}

// CellForCol maps a document column to its first cell.
func (vl VisualLine) CellForCol(col int) int {
	if len(vl.colToCell) == 0 {
		return 0
	}
	return vl.colToCell[clampInt(col, 0, vl.RawLen)]
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
