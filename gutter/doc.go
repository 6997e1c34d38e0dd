// Package gutter derives the line-number column shown beside the text area.
//
// The gutter never inspects the document directly. It samples a Surface, the
// rendered viewport, at a fixed vertical step and labels each logical line
// once, at the first sample where it appears. A soft-wrapped line therefore
// gets a single label at its topmost visible row.
//
// FormatLabel never truncates: a number wider than the label field keeps all
// its digits and widens that label.
//
// Sample is pure. Gutter adds the cache that keeps no-op refreshes from
// touching the Display.
package gutter
