package buffer

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos points into the document by 0-based row and grapheme column.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// Address is a caret address in "line.column" form.
// Line is 1-based, Column is 0-based.
type Address struct {
	Line   int
	Column int
}

// AddressOf converts a document position to its address form.
func AddressOf(p Pos) Address {
	return Address{Line: p.Row + 1, Column: p.Col}
}

// Pos converts a to a document position.
func (a Address) Pos() Pos {
	return Pos{Row: a.Line - 1, Col: a.Column}
}

func (a Address) String() string {
	return strconv.Itoa(a.Line) + "." + strconv.Itoa(a.Column)
}

// ParseAddress parses the "line.column" form produced by Address.String.
func ParseAddress(s string) (Address, error) {
	line, col, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Address{}, fmt.Errorf("parse address %q: missing '.'", s)
	}
	l, err := strconv.Atoi(line)
	if err != nil {
		return Address{}, fmt.Errorf("parse address %q: line: %w", s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Address{}, fmt.Errorf("parse address %q: column: %w", s, err)
	}
	if l < 1 || c < 0 {
		return Address{}, fmt.Errorf("parse address %q: out of range", s)
	}
	return Address{Line: l, Column: c}, nil
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
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

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
