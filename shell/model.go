// Package shell is the escode composition root. It wires the text area, the
// line-number gutter, the footer, the file controller and the auto-pair
// handler together through a notify.Bus and draws the window chrome around
// them.
package shell

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/iw2rmb/escode/autopair"
	"github.com/iw2rmb/escode/buffer"
	"github.com/iw2rmb/escode/config"
	"github.com/iw2rmb/escode/editor"
	"github.com/iw2rmb/escode/files"
	"github.com/iw2rmb/escode/footer"
	"github.com/iw2rmb/escode/gutter"
	"github.com/iw2rmb/escode/internal/logging"
	"github.com/iw2rmb/escode/notify"
)

// Options configures New. Zero values select defaults.
type Options struct {
	Settings  *config.Settings
	Fs        afero.Fs
	Logger    *log.Logger
	Clipboard editor.Clipboard
	Style     *Style
	KeyMap    *KeyMap

	// Watch reports external modifications of the bound file. It needs the
	// OS filesystem.
	Watch bool
}

// live is the state bus subscribers read. Model copies share it.
type live struct {
	buf     *buffer.Buffer
	surface editor.Surface
	queue   []notify.Event
}

func (l *live) push(topic notify.Topic, payload any) {
	l.queue = append(l.queue, notify.Event{Topic: topic, Payload: payload})
}

type pollMsg struct{}

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogOpen
	dialogSave
)

// Model is the editor window. It is a Bubble Tea component; hosts forward
// messages to Update and render View.
type Model struct {
	settings *config.Settings
	logger   *log.Logger
	keys     KeyMap
	style    Style

	bus     *notify.Bus
	live    *live
	editor  editor.Model
	gutter  *gutter.Gutter
	gview   *gutterView
	footer  *footer.Footer
	files   *files.Controller
	pairs   *autopair.Handler
	watcher *files.Watcher

	width, height int
	fixedSize     bool

	dialog dialogKind
	picker filepicker.Model
	input  textinput.Model
	notice string
}

func New(opt Options) Model {
	settings := opt.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	fsys := opt.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	style := DefaultStyle()
	if opt.Style != nil {
		style = *opt.Style
	}
	keys := DefaultKeyMap()
	if opt.KeyMap != nil {
		keys = *opt.KeyMap
	}
	wrap, err := settings.WrapMode()
	if err != nil {
		logger.Warn("bad wrap mode, using none", "err", err)
	}

	m := Model{
		settings: settings,
		logger:   logger,
		keys:     keys,
		style:    style,
		bus:      notify.New(),
		live:     &live{},
		gview:    &gutterView{},
		files:    files.NewController(fsys, logger),
		pairs:    autopair.New(settings.Editor.TabSpaces),
		input:    textinput.New(),
	}
	m.input.Prompt = "Path: "
	m.input.Placeholder = "file to save"

	lv := m.live
	m.editor = editor.New(editor.Config{
		WrapMode:  wrap,
		TabWidth:  settings.Editor.TabWidth,
		Style:     style.Editor,
		Clipboard: opt.Clipboard,
		Intercept: m.pairs.Intercept,
		OnChange: func(ev editor.ChangeEvent) {
			if ev.TextChanged {
				lv.push(notify.TopicBufferChanged, ev)
			}
			if ev.CursorMoved {
				lv.push(notify.TopicCaretMoved, ev)
			}
		},
		OnViewportChange: func(vs editor.ViewportState) {
			lv.push(notify.TopicViewportChanged, vs)
		},
	})
	lv.buf = m.editor.Buffer()
	lv.surface = m.editor.Surface(settings.Gutter.RowUnits)

	g := gutter.New(gutter.Options{Step: settings.Gutter.Step, Width: settings.Gutter.LabelWidth}, m.gview)
	m.gutter = g
	m.footer = footer.New(m.bus, footer.CaretFunc(func() buffer.Address { return lv.buf.CursorAddress() }), style.Footer)

	refresh := func(notify.Event) { g.Refresh(lv.surface) }
	m.bus.Subscribe(notify.TopicBufferChanged, refresh)
	m.bus.Subscribe(notify.TopicViewportChanged, refresh)
	m.bus.Subscribe(notify.TopicDocumentReplaced, func(notify.Event) {
		g.Reset()
		g.Refresh(lv.surface)
	})
	m.bus.Subscribe(notify.TopicBufferChanged, func(ev notify.Event) {
		if ce, ok := ev.Payload.(editor.ChangeEvent); ok {
			for _, e := range ce.Edits {
				logger.Debug("edit", "at", e.RangeBefore.Start, "inserted", len(e.InsertText), "deleted", len(e.DeletedText))
			}
		}
	})
	m.bus.Subscribe(notify.TopicFileSaved, func(ev notify.Event) {
		logger.Debug("file.saved", "path", ev.Payload)
	})

	if opt.Watch {
		w, err := files.NewWatcher(logger)
		if err != nil {
			logger.Warn("file watching disabled", "err", err)
		} else {
			m.watcher = w
		}
	}

	if settings.Window.Width > 0 && settings.Window.Height > 0 {
		m = m.SetSize(settings.Window.Width, settings.Window.Height)
		m.fixedSize = true
	}
	m.commit()
	g.Refresh(lv.surface)
	return m
}

// Load opens path at startup. A path that does not exist yet starts an
// empty document bound to it.
func (m Model) Load(path string) (Model, error) {
	if path == "" {
		return m, nil
	}
	exists, err := afero.Exists(m.files.Fs(), path)
	if err != nil {
		return m, err
	}
	if !exists {
		m.files.Bind(path)
		m.replaceDocument("", path)
		m.logger.Info("new file", "path", path)
		return m, nil
	}
	text, err := m.files.Open(path)
	if err != nil {
		return m, err
	}
	m.replaceDocument(text, path)
	return m, nil
}

// Init starts the gutter polling fallback and the file watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.waitExternal())
}

// poll schedules the next gutter re-sample. Each tick reschedules itself.
func (m Model) poll() tea.Cmd {
	interval := m.settings.Gutter.PollInterval
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return pollMsg{} })
}

// Close releases the watcher and the footer subscriptions.
func (m Model) Close() error {
	m.footer.Close()
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// Bus exposes the change notifications to hosts.
func (m Model) Bus() *notify.Bus { return m.bus }

func (m Model) Buffer() *buffer.Buffer { return m.editor.Buffer() }

func (m Model) Editor() editor.Model { return m.editor }

func (m Model) Gutter() *gutter.Gutter { return m.gutter }

func (m Model) Footer() *footer.Footer { return m.footer }

func (m Model) Files() *files.Controller { return m.files }

// Notice returns the modal error text, or "".
func (m Model) Notice() string { return m.notice }

// commit refreshes the state subscribers read and delivers the queued
// editor notifications.
func (m *Model) commit() {
	m.live.buf = m.editor.Buffer()
	m.live.surface = m.editor.Surface(m.settings.Gutter.RowUnits)
	queue := m.live.queue
	m.live.queue = nil
	for _, ev := range queue {
		m.bus.Publish(ev.Topic, ev.Payload)
	}
}

// replaceDocument swaps the buffer for New and Open.
func (m *Model) replaceDocument(text, path string) {
	m.editor = m.editor.Reset(text)
	m.live.push(notify.TopicDocumentReplaced, path)
	m.commit()
	if m.watcher != nil {
		if err := m.watcher.Watch(path); err != nil {
			m.logger.Warn("watch", "path", path, "err", err)
		}
	}
}
