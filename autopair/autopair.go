// Package autopair replaces the default insertion of a few trigger keys with
// a paired insertion and a caret reposition.
//
// A pair is always inserted, even when the matching closer already follows
// the caret, and deleting one half never deletes the other.
package autopair

import (
	"strings"

	"github.com/iw2rmb/escode/buffer"
)

// DefaultTabSpaces is the number of spaces a tab key inserts.
const DefaultTabSpaces = 4

// Target is the text the handler edits. *buffer.Buffer satisfies it.
type Target interface {
	InsertText(s string)
	Cursor() buffer.Pos
	SetCursor(p buffer.Pos)
}

// Rule is one trigger key and its replacement.
type Rule struct {
	Key    string
	Insert string
	// Back is how many columns the caret steps back after the insertion.
	Back int
}

// Handler holds the trigger table.
type Handler struct {
	rules map[string]Rule
}

// New returns a handler for the default trigger table. tabSpaces <= 0
// selects DefaultTabSpaces.
func New(tabSpaces int) *Handler {
	if tabSpaces <= 0 {
		tabSpaces = DefaultTabSpaces
	}
	h := &Handler{rules: make(map[string]Rule)}
	h.Add(Rule{Key: "tab", Insert: strings.Repeat(" ", tabSpaces)})
	for _, p := range []string{"{}", "[]", "()", "''", `""`} {
		h.Add(Rule{Key: p[:1], Insert: p, Back: 1})
	}
	return h
}

// Add installs r, replacing any rule for the same key.
func (h *Handler) Add(r Rule) {
	h.rules[r.Key] = r
}

// Rule returns the rule for key.
func (h *Handler) Rule(key string) (Rule, bool) {
	r, ok := h.rules[key]
	return r, ok
}

// Handle applies the rule for key to t and reports whether the key was
// consumed. Unknown keys are left to the default handling.
func (h *Handler) Handle(key string, t Target) bool {
	r, ok := h.rules[key]
	if !ok {
		return false
	}
	t.InsertText(r.Insert)
	if r.Back > 0 {
		// Replacements hold no line break, so the caret stays on its line.
		p := t.Cursor()
		p.Col = max(p.Col-r.Back, 0)
		t.SetCursor(p)
	}
	return true
}

// Intercept adapts Handle to the editor's key hook.
func (h *Handler) Intercept(key string, b *buffer.Buffer) bool {
	return h.Handle(key, b)
}
