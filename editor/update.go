package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/escode/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	if m.cfg.Intercept != nil && !m.cfg.ReadOnly && m.cfg.Intercept(msg.String(), m.buf) {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveVisual(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVisual(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.moveVisual(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVisual(1, true)

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.moveVisual(-max(m.visibleRowCount()-1, 1), false)
	case key.Matches(msg, km.PageDown):
		m.moveVisual(max(m.visibleRowCount()-1, 1), false)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// moveVisual moves the caret by delta visual rows, keeping its cell offset.
// Wrapped lines are walked row by row.
func (m *Model) moveVisual(delta int, extend bool) {
	layout := m.ensureLayout()
	row, cell, ok := layout.caretPosition(m.buf.Cursor(), m.cfg.WrapMode)
	if !ok {
		return
	}
	target := layout.clampVisualRow(row + delta)

	var p buffer.Pos
	if target == row {
		// Already on the first or last row: jump to the row edge.
		line, seg, ref, _ := layout.segmentAt(target)
		p = buffer.Pos{Row: ref.logicalRow, Col: seg.StartCol}
		if delta > 0 {
			p.Col = line.caretEndCol(ref.segmentIndex)
		}
	} else {
		line, seg, ref, _ := layout.segmentAt(target)
		if m.cfg.WrapMode == WrapNone {
			p = buffer.Pos{Row: ref.logicalRow, Col: line.visual.ColForCell(cell)}
		} else {
			endCol := line.caretEndCol(ref.segmentIndex)
			col := endCol
			if cell < seg.Cells {
				col = min(line.visual.ColForCell(seg.startCell+cell), endCol)
			}
			p = buffer.Pos{Row: ref.logicalRow, Col: max(col, seg.StartCol)}
		}
	}
	m.moveCaretTo(p, extend)
}

func (m *Model) moveCaretTo(p buffer.Pos, extend bool) {
	if !extend {
		m.buf.SetCursor(p)
		return
	}
	anchor := m.buf.Cursor()
	if raw, ok := m.buf.SelectionRaw(); ok {
		anchor = raw.Start
	}
	m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
