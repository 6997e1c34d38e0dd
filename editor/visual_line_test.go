package editor

import "testing"

func TestBuildVisualLine_ExpandsTabs(t *testing.T) {
	vl := BuildVisualLine("a\tb", 4)

	if got := vl.VisualLen(); got != 5 {
		t.Fatalf("visual len: got %d, want %d", got, 5)
	}
	if got := len(vl.Tokens); got != 3 {
		t.Fatalf("token count: got %d, want %d", got, 3)
	}
	tab := vl.Tokens[1]
	if tab.Text != "   " || tab.StartCell != 1 || tab.CellWidth != 3 || tab.Col != 1 {
		t.Fatalf("tab token: got %+v", tab)
	}

	cases := []struct{ cell, col int }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {5, 3}, {99, 3}, {-3, 0},
	}
	for _, tc := range cases {
		if got := vl.ColForCell(tc.cell); got != tc.col {
			t.Fatalf("ColForCell(%d): got %d, want %d", tc.cell, got, tc.col)
		}
	}
	if got := vl.CellForCol(2); got != 4 {
		t.Fatalf("CellForCol(2): got %d, want %d", got, 4)
	}
	if got := vl.CellForCol(3); got != 5 {
		t.Fatalf("CellForCol(3): got %d, want %d", got, 5)
	}
}

func TestBuildVisualLine_WideGrapheme(t *testing.T) {
	vl := BuildVisualLine("世a", 4)

	if got := vl.VisualLen(); got != 3 {
		t.Fatalf("visual len: got %d, want %d", got, 3)
	}
	if got := vl.ColForCell(1); got != 0 {
		t.Fatalf("second cell of wide grapheme: got col %d, want %d", got, 0)
	}
	if got := vl.CellForCol(1); got != 2 {
		t.Fatalf("CellForCol(1): got %d, want %d", got, 2)
	}
}

func TestBuildVisualLine_Empty(t *testing.T) {
	vl := BuildVisualLine("", 4)
	if vl.RawLen != 0 || vl.VisualLen() != 0 || len(vl.Tokens) != 0 {
		t.Fatalf("empty line: got %+v", vl)
	}
	if got := vl.CellForCol(5); got != 0 {
		t.Fatalf("CellForCol on empty line: got %d, want 0", got)
	}
}
