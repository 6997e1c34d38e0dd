package editor

// ScrollPolicy controls how viewport scrolling is allowed to move relative to
// the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual allows wheel scrolling even when the caret does not
	// move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps viewport movement caret-driven.
	ScrollFollowCursorOnly
)
