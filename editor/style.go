package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the text area's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
