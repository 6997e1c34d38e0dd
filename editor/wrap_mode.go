package editor

import "fmt"

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and scrolls horizontally
// to keep the caret visible. WrapWord and WrapGrapheme soft-wrap.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (w WrapMode) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(w))
	}
}

// ParseWrapMode parses the String form of a WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "none":
		return WrapNone, nil
	case "word":
		return WrapWord, nil
	case "grapheme", "char":
		return WrapGrapheme, nil
	default:
		return WrapNone, fmt.Errorf("unknown wrap mode %q", s)
	}
}
