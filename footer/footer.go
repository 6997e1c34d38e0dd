// Package footer reports the caret position, the bound file and transient
// status messages below the text area.
package footer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/escode/buffer"
	"github.com/iw2rmb/escode/notify"
)

// DefaultStatusDuration is how long a transient status stays visible.
const DefaultStatusDuration = 3 * time.Second

// CaretSource is re-read on every notification.
type CaretSource interface {
	CursorAddress() buffer.Address
}

// CaretFunc adapts a function to CaretSource.
type CaretFunc func() buffer.Address

func (f CaretFunc) CursorAddress() buffer.Address { return f() }

// Kind classifies a status message.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) icon() string {
	switch k {
	case KindSuccess:
		return "✓"
	case KindWarning:
		return "⚠"
	case KindError:
		return "×"
	default:
		return "ℹ"
	}
}

// ClearStatusMsg expires the status with the matching sequence number.
type ClearStatusMsg struct{ Seq uint64 }

type Style struct {
	Bar      lipgloss.Style
	Position lipgloss.Style
	File     lipgloss.Style
	Status   map[Kind]lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Bar:      lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		Position: lipgloss.NewStyle().Bold(true),
		File:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: map[Kind]lipgloss.Style{
			KindInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			KindSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			KindWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			KindError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// Footer is updated through the bus. It has no debouncing: every
// notification re-reads the caret.
type Footer struct {
	src   CaretSource
	style Style

	addr    buffer.Address
	path    string
	updates int

	status     string
	statusKind Kind
	statusSeq  uint64
	duration   time.Duration

	unsubscribe []func()
}

// New subscribes a footer to bus. Call Close to detach it.
func New(bus *notify.Bus, src CaretSource, style Style) *Footer {
	f := &Footer{src: src, style: style, duration: DefaultStatusDuration}
	f.refresh()
	if bus != nil {
		for _, topic := range []notify.Topic{
			notify.TopicCaretMoved,
			notify.TopicViewportChanged,
			notify.TopicDocumentReplaced,
		} {
			f.unsubscribe = append(f.unsubscribe, bus.Subscribe(topic, f.handle))
		}
		f.unsubscribe = append(f.unsubscribe, bus.Subscribe(notify.TopicFileSaved, func(ev notify.Event) {
			if p, ok := ev.Payload.(string); ok {
				f.path = p
			}
		}))
	}
	return f
}

func (f *Footer) handle(ev notify.Event) {
	if ev.Topic == notify.TopicDocumentReplaced {
		if p, ok := ev.Payload.(string); ok {
			f.path = p
		}
	}
	f.refresh()
}

func (f *Footer) refresh() {
	f.updates++
	if f.src != nil {
		f.addr = f.src.CursorAddress()
	}
}

// Close removes the footer's subscriptions.
func (f *Footer) Close() {
	for _, u := range f.unsubscribe {
		u()
	}
	f.unsubscribe = nil
}

// SetStatusDuration changes how long later statuses stay visible.
func (f *Footer) SetStatusDuration(d time.Duration) {
	if d > 0 {
		f.duration = d
	}
}

// SetPath sets the displayed file path. "" shows [untitled].
func (f *Footer) SetPath(path string) { f.path = path }

// Position returns "Ln <line>, Col <column>".
func (f *Footer) Position() string {
	return fmt.Sprintf("Ln %d, Col %d", f.addr.Line, f.addr.Column)
}

// Address returns the last caret address read from the source.
func (f *Footer) Address() buffer.Address { return f.addr }

// Updates counts how many times the caret was re-read.
func (f *Footer) Updates() int { return f.updates }

// FileLabel returns the base name of the bound file, or [untitled].
func (f *Footer) FileLabel() string {
	if f.path == "" {
		return "[untitled]"
	}
	return filepath.Base(f.path)
}

// ShowStatus sets a transient status and returns the command that clears it.
func (f *Footer) ShowStatus(kind Kind, msg string) tea.Cmd {
	f.statusSeq++
	seq := f.statusSeq
	f.status = msg
	f.statusKind = kind
	return tea.Tick(f.duration, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// Status returns the visible status text with its icon.
func (f *Footer) Status() (string, bool) {
	if f.status == "" {
		return "", false
	}
	return f.statusKind.icon() + " " + f.status, true
}

// Update clears the status when its timer fires. Timers of replaced
// statuses are ignored.
func (f *Footer) Update(msg tea.Msg) {
	if m, ok := msg.(ClearStatusMsg); ok && m.Seq == f.statusSeq {
		f.status = ""
	}
}

// View renders the footer bar at width cells.
func (f *Footer) View(width int) string {
	left := f.style.Position.Render(f.Position()) + "  " + f.style.File.Render(f.FileLabel())
	right := ""
	if s, ok := f.Status(); ok {
		right = f.style.Status[f.statusKind].Render(s)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := " " + left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	} else if right != "" {
		line += "  " + right
	}
	return f.style.Bar.Width(width).MaxWidth(width).Render(line)
}
