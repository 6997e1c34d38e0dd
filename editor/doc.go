// Package editor provides the Bubble Tea text area used by escode, backed by
// the buffer package.
//
// The package owns key and mouse handling, soft wrapping, the scrollable
// viewport and caret rendering. It reports buffer and viewport changes
// through Config callbacks and exposes the rendered viewport as a Surface so
// that a line-number gutter can be drawn beside it without reaching into the
// layout.
package editor
