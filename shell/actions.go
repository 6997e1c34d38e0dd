package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/escode/files"
	"github.com/iw2rmb/escode/footer"
	"github.com/iw2rmb/escode/notify"
)

func (m Model) newDocument() (Model, tea.Cmd) {
	m.files.New()
	m.replaceDocument("", m.files.Path())
	return m, m.footer.ShowStatus(footer.KindInfo, "New document")
}

func (m Model) openFile(path string) (Model, tea.Cmd) {
	text, err := m.files.Open(path)
	if err != nil {
		return m.fail("open", err)
	}
	m.replaceDocument(text, path)
	return m, m.footer.ShowStatus(footer.KindSuccess, "Opened "+filepath.Base(path))
}

// save writes to the bound path, or asks for one when nothing is bound.
func (m Model) save() (Model, tea.Cmd) {
	err := m.files.Save(m.editor.Buffer().Text())
	if errors.Is(err, files.ErrNoPath) {
		return m.saveDialog()
	}
	if err != nil {
		return m.fail("save", err)
	}
	return m.saved(m.files.Path())
}

func (m Model) saveAs(path string) (Model, tea.Cmd) {
	if err := m.files.SaveAs(path, m.editor.Buffer().Text()); err != nil {
		return m.fail("save", err)
	}
	if m.watcher != nil {
		if err := m.watcher.Watch(path); err != nil {
			m.logger.Warn("watch", "path", path, "err", err)
		}
	}
	return m.saved(path)
}

func (m Model) saved(path string) (Model, tea.Cmd) {
	m.bus.Publish(notify.TopicFileSaved, path)
	return m, m.footer.ShowStatus(footer.KindSuccess, "Saved "+filepath.Base(path))
}

// fail reports err in a modal notice. Cancellation is a no-op.
func (m Model) fail(op string, err error) (Model, tea.Cmd) {
	if errors.Is(err, files.ErrCanceled) {
		m.logger.Debug(op + " canceled")
		return m, nil
	}
	m.logger.Error(op+" failed", "err", err)
	m.notice = noticeText(op, err)
	return m, nil
}

func noticeText(op string, err error) string {
	var dec *files.DecodeFailure
	if errors.As(err, &dec) {
		return fmt.Sprintf("Cannot open %s: the file is not valid UTF-8 text (first bad byte at offset %d).", dec.Path, dec.Offset)
	}
	var ioErr *files.IOFailure
	if errors.As(err, &ioErr) {
		return fmt.Sprintf("Cannot %s %s: %v.", op, ioErr.Path, ioErr.Err)
	}
	return fmt.Sprintf("Cannot %s: %v.", op, err)
}

func (m Model) openDialog() (Model, tea.Cmd) {
	dir := "."
	if p := m.files.Path(); p != "" {
		dir = filepath.Dir(p)
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{} // Empty means all files are allowed
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = max(m.layout().editorH-4, 3)

	m.picker = fp
	m.dialog = dialogOpen
	return m, m.picker.Init()
}

func (m Model) saveDialog() (Model, tea.Cmd) {
	m.input.SetValue(m.files.Path())
	m.input.CursorEnd()
	m.dialog = dialogSave
	return m, m.input.Focus()
}

func (m Model) closeDialog() Model {
	m.dialog = dialogNone
	m.input.Blur()
	return m
}

func (m Model) updateDialog(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Cancel) {
		m.logger.Debug("dialog canceled")
		return m.closeDialog(), nil
	}

	var cmd tea.Cmd
	switch m.dialog {
	case dialogOpen:
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m = m.closeDialog()
			return m.openFile(path)
		}
	case dialogSave:
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Submit) {
			path := strings.TrimSpace(m.input.Value())
			m = m.closeDialog()
			return m.saveAs(path)
		}
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) menuClick(x int) (Model, tea.Cmd) {
	idx := -1
	for i, span := range m.menuSpans() {
		if x >= span[0] && x < span[1] {
			idx = i
			break
		}
	}
	switch idx {
	case 0:
		return m.newDocument()
	case 1:
		return m.openDialog()
	case 2:
		return m.save()
	case 3:
		return m, tea.Quit
	}
	return m, nil
}
