package editor

import "github.com/iw2rmb/escode/buffer"

// Config configures the text area Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	WrapMode WrapMode
	// TabWidth is the display width of a literal tab. Default: 4.
	TabWidth int

	Style  Style
	KeyMap KeyMap

	ScrollPolicy ScrollPolicy
	// WheelStep is the number of rows (or cells, horizontally) one wheel
	// notch scrolls. Default: 3.
	WheelStep int

	// Clipboard backs copy/cut/paste. Nil disables them.
	Clipboard Clipboard

	ReadOnly bool

	// Intercept runs before the default handling of every non-paste key.
	// Returning true consumes the key: no default insertion happens.
	Intercept func(key string, b *buffer.Buffer) bool

	// OnChange fires once per Update that moved the caret or edited text.
	OnChange func(ChangeEvent)
	// OnViewportChange fires once per Update that scrolled, resized or
	// re-laid-out the viewport.
	OnViewportChange func(ViewportState)
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.WheelStep <= 0 {
		c.WheelStep = 3
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
