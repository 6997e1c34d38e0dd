package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the menu shortcuts. Every other key goes to the text area.
type KeyMap struct {
	New    key.Binding
	Open   key.Binding
	Save   key.Binding
	Quit   key.Binding
	Cancel key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^N", "New")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "Open")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "Save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "Quit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}
}

// menuBindings lists the bindings shown in the menu bar, in order.
func (k KeyMap) menuBindings() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Save, k.Quit}
}
