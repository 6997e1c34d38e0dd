package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/escode/editor"
	"github.com/iw2rmb/escode/footer"
)

// Style controls the chrome around the text area.
type Style struct {
	Menu      lipgloss.Style
	MenuKey   lipgloss.Style
	Gutter    lipgloss.Style
	Scrollbar lipgloss.Style
	Thumb     lipgloss.Style
	Dialog    lipgloss.Style
	Notice    lipgloss.Style
	Title     lipgloss.Style

	Editor editor.Style
	Footer footer.Style
}

func DefaultStyle() Style {
	return Style{
		Menu:      lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		MenuKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Scrollbar: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true),
		Editor: editor.DefaultStyle(),
		Footer: footer.DefaultStyle(),
	}
}
