// Package buffer implements the document model behind the editor widget:
// lines of grapheme clusters, a single caret and an optional selection.
//
// Pos coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Address is the widget-facing "line.column" form with a 1-based line and a
// 0-based column. Ranges are half-open: [Start, End).
package buffer
