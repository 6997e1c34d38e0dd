package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/escode/gutter"
)

// gutterView is the gutter's Display. It keeps the last block and draws each
// label on the row where its line was first sampled.
type gutterView struct {
	snap     gutter.Snapshot
	replaced int
}

func (v *gutterView) Replace(s gutter.Snapshot) {
	v.snap = s
	v.replaced++
}

// render returns rows lines of width cells. Labels lose their trailing
// newline and keep one blank cell of separation from the text.
func (v *gutterView) render(rows, rowUnits, width int, st lipgloss.Style) string {
	if rows <= 0 {
		return ""
	}
	if rowUnits <= 0 {
		rowUnits = 1
	}
	lines := make([]string, rows)
	for _, l := range v.snap.Labels {
		r := l.Y / rowUnits
		if r < 0 || r >= rows || lines[r] != "" {
			continue
		}
		lines[r] = strings.TrimSuffix(gutter.FormatLabel(l.Line, width), "\n")
	}
	block := lipgloss.NewStyle().Width(width).MaxWidth(width)
	for i, s := range lines {
		lines[i] = st.Inherit(block).Render(s)
	}
	return strings.Join(lines, "\n")
}
