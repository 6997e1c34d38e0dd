package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the UI; a failing clipboard behaves like an empty one.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard is the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Available reports whether the host has a usable clipboard utility.
func (SystemClipboard) Available() bool { return !clipboard.Unsupported }
