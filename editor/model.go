package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/escode/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	// xOffset is the horizontal scroll in cells. WrapNone only.
	xOffset int

	layout layoutCache

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
	lastViewport    ViewportState

	mouseDragging bool
	mouseAnchor   buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.MouseWheelEnabled = false
	m.markSynced()
	m.rebuildContent()
	m.lastViewport = m.ViewportState()
	return m
}

// Buffer returns the edited buffer. Hosts may mutate it directly; the next
// Update picks the changes up.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

func (m Model) Init() tea.Cmd { return nil }

// Reset replaces the document with text and scrolls back to the top.
// Both callbacks fire for the replacement.
func (m Model) Reset(text string) Model {
	m.buf = buffer.New(text)
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.mouseDragging = false
	m.invalidateLayout()
	m.rebuildContent()
	m.emit(true, true)
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	m.emit(false, false)
	return m
}

func (m Model) SetWrapMode(mode WrapMode) Model {
	if m.cfg.WrapMode == mode {
		return m
	}
	m.cfg.WrapMode = mode
	m.xOffset = 0
	m.rebuildContent()
	m.followCursor()
	m.emit(false, false)
	return m
}

func (m Model) WrapMode() WrapMode { return m.cfg.WrapMode }

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	m.afterUpdate()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// afterUpdate reconciles the view with the buffer and fires callbacks.
func (m *Model) afterUpdate() {
	if m.buf.Version() == m.lastBufVersion {
		m.emit(false, false)
		return
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	cursorMoved := m.buf.Cursor() != m.lastCursor
	m.rebuildContent()
	if textChanged || cursorMoved {
		m.followCursor()
	}
	m.emit(textChanged, cursorMoved)
}

// emit reports buffer and viewport changes since the last call.
func (m *Model) emit(textChanged, cursorMoved bool) {
	bufChanged := m.buf.Version() != m.lastBufVersion || textChanged || cursorMoved
	m.markSynced()
	if bufChanged && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged, cursorMoved))
	}

	vs := m.ViewportState()
	if vs != m.lastViewport {
		m.lastViewport = vs
		if m.cfg.OnViewportChange != nil {
			m.cfg.OnViewportChange(vs)
		}
	}
}

func (m *Model) markSynced() {
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
}

// Sync picks up buffer mutations made by the host outside Update.
func (m Model) Sync() Model {
	m.afterUpdate()
	return m
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) contentWidth() int {
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize(), 0)
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

// followCursor scrolls the minimum amount that brings the caret into view.
func (m *Model) followCursor() {
	layout := m.ensureLayout()
	row, cell, ok := layout.caretPosition(m.buf.Cursor(), m.cfg.WrapMode)
	if !ok {
		return
	}

	if h := m.visibleRowCount(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}

	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	prev := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}

// ScrollTo sets the top visual row and, in WrapNone, the left cell offset.
// Both are clamped to the content.
func (m Model) ScrollTo(topRow, leftCell int) Model {
	m.setYOffset(topRow)
	m.setXOffset(leftCell)
	m.emit(false, false)
	return m
}

func (m *Model) setYOffset(row int) {
	if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
		return
	}
	m.viewport.SetYOffset(max(row, 0))
}

func (m *Model) setXOffset(cell int) {
	if m.cfg.WrapMode != WrapNone || m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
		return
	}
	layout := m.ensureLayout()
	maxX := max(layout.maxCells+1-m.contentWidth(), 0)
	cell = clampInt(cell, 0, maxX)
	if cell != m.xOffset {
		m.xOffset = cell
		m.rebuildContent()
	}
}
