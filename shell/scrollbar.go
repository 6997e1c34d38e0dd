package shell

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	trackRune = "░"
	thumbRune = "█"
)

// thumbSpan maps the visible fraction [first,last) onto a track of n cells.
// The thumb is always at least one cell.
func thumbSpan(n int, first, last float64) (start, end int) {
	if n <= 0 {
		return 0, 0
	}
	first = math.Max(0, math.Min(first, 1))
	last = math.Max(first, math.Min(last, 1))

	start = int(math.Floor(first * float64(n)))
	end = int(math.Ceil(last * float64(n)))
	start = min(start, n-1)
	end = max(min(end, n), start+1)
	return start, end
}

func trackCells(n int, first, last float64, track, thumb lipgloss.Style) []string {
	start, end := thumbSpan(n, first, last)
	cells := make([]string, n)
	for i := range cells {
		if i >= start && i < end {
			cells[i] = thumb.Render(thumbRune)
		} else {
			cells[i] = track.Render(trackRune)
		}
	}
	return cells
}

// verticalBar renders a one-cell wide, height-tall scrollbar.
func verticalBar(height int, first, last float64, track, thumb lipgloss.Style) string {
	return strings.Join(trackCells(height, first, last, track, thumb), "\n")
}

// horizontalBar renders a one-row, width-wide scrollbar.
func horizontalBar(width int, first, last float64, track, thumb lipgloss.Style) string {
	return strings.Join(trackCells(width, first, last, track, thumb), "")
}
