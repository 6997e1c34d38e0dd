package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/escode/footer"
)

type layout struct {
	menuH, footerH, hbarH int
	gutterW, vbarW        int
	editorW, editorH      int
}

func (m Model) layout() layout {
	l := layout{menuH: 1, footerH: 1, gutterW: m.settings.Gutter.LabelWidth}
	if m.settings.Window.Scrollbars {
		l.vbarW = 1
		l.hbarH = 1
	}
	l.editorW = max(m.width-l.gutterW-l.vbarW, 0)
	l.editorH = max(m.height-l.menuH-l.footerH-l.hbarH, 0)
	return l
}

// SetSize resizes the whole window. Embedding hosts call it directly.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	l := m.layout()
	m.editor = m.editor.SetSize(l.editorW, l.editorH)
	m.picker.Height = max(l.editorH-4, 3)
	m.input.Width = max(min(m.width-16, 60), 10)
	m.commit()
	m.gutter.Refresh(m.live.surface)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.fixedSize {
			return m, nil
		}
		return m.SetSize(msg.Width, msg.Height), nil
	case pollMsg:
		// Catches edits hosts made on the buffer outside Update.
		m.editor = m.editor.Sync()
		m.commit()
		m.gutter.Refresh(m.live.surface)
		return m, m.poll()
	case footer.ClearStatusMsg:
		m.footer.Update(msg)
		return m, nil
	case externalMsg:
		return m.handleExternal(msg)
	}

	if m.notice != "" {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			m.notice = ""
		case tea.MouseMsg:
			if msg.Action == tea.MouseActionPress {
				m.notice = ""
			}
		}
		return m, nil
	}

	if m.dialog != dialogNone {
		return m.updateDialog(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.New):
			return m.newDocument()
		case key.Matches(msg, m.keys.Open):
			return m.openDialog()
		case key.Matches(msg, m.keys.Save):
			return m.save()
		}
		return m.updateEditor(msg)

	case tea.MouseMsg:
		l := m.layout()
		if msg.Y < l.menuH && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.menuClick(msg.X)
		}
		msg.X -= l.gutterW
		msg.Y -= l.menuH
		return m.updateEditor(msg)
	}

	return m.updateEditor(msg)
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.commit()
	return m, cmd
}
