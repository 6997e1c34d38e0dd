package shell

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/escode/files"
	"github.com/iw2rmb/escode/footer"
	"github.com/iw2rmb/escode/notify"
)

type externalMsg files.Change

// waitExternal blocks on the watcher for the next change of the bound file.
func (m Model) waitExternal() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return externalMsg(c)
	}
}

// handleExternal warns when the bound file no longer matches what was last
// read or written. The buffer is left alone.
func (m Model) handleExternal(msg externalMsg) (Model, tea.Cmd) {
	next := m.waitExternal()
	changed, err := m.files.Changed()
	if err != nil {
		m.logger.Warn("stat", "path", msg.Path, "err", err)
		return m, next
	}
	if !changed {
		return m, next
	}
	m.bus.Publish(notify.TopicFileExternal, files.Change(msg))
	what := " changed on disk"
	if msg.Removed {
		what = " was removed from disk"
	}
	m.logger.Info("external change", "path", msg.Path, "removed", msg.Removed)
	return m, tea.Batch(next, m.footer.ShowStatus(footer.KindWarning, filepath.Base(msg.Path)+what))
}
