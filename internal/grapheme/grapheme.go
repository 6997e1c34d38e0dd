// Package grapheme holds the grapheme-cluster and terminal-cell helpers shared
// by the buffer and editor packages.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters back into a string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether every rune of cluster is Unicode whitespace.
func IsSpace(cluster string) bool {
	return cluster != "" && strings.IndexFunc(cluster, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsPunct reports whether every rune of cluster is Unicode punctuation.
func IsPunct(cluster string) bool {
	return cluster != "" && strings.IndexFunc(cluster, func(r rune) bool { return !unicode.IsPunct(r) }) < 0
}

// TabAdvance returns the number of cells a tab occupies when it starts at
// visual column col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}

// Width returns the terminal cell width of cluster when rendered at visual
// column col. Zero-width clusters report at least 1 so that every cluster
// stays addressable.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 1 {
		w = 1
	}
	return w
}
