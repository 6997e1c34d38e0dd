package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout()
	vs := m.editor.ViewportState()

	rows := []string{m.menuView()}
	if l.editorH > 0 {
		parts := []string{
			m.gview.render(l.editorH, m.settings.Gutter.RowUnits, l.gutterW, m.style.Gutter),
			lipgloss.NewStyle().Width(l.editorW).Height(l.editorH).MaxWidth(l.editorW).MaxHeight(l.editorH).Render(m.editor.View()),
		}
		if l.vbarW > 0 {
			first, last := vs.VerticalFraction()
			parts = append(parts, verticalBar(l.editorH, first, last, m.style.Scrollbar, m.style.Thumb))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	if l.hbarH > 0 {
		first, last := vs.HorizontalFraction()
		rows = append(rows, strings.Repeat(" ", l.gutterW)+horizontalBar(l.editorW, first, last, m.style.Scrollbar, m.style.Thumb)+strings.Repeat(" ", l.vbarW))
	}
	rows = append(rows, m.footer.View(m.width))
	base := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.dialog != dialogNone {
		base = overlay.Composite(m.dialogView(), base, overlay.Center, overlay.Center, 0, 0)
	}
	if m.notice != "" {
		base = overlay.Composite(m.noticeView(), base, overlay.Center, overlay.Center, 0, 0)
	}
	return base
}

func (m Model) menuItems() []string {
	bindings := m.keys.menuBindings()
	items := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		items[i] = " " + h.Desc + " " + m.style.MenuKey.Render(h.Key) + " "
	}
	return items
}

// menuSpans returns the [start,end) cell range of each menu item.
func (m Model) menuSpans() [][2]int {
	items := m.menuItems()
	spans := make([][2]int, len(items))
	x := 0
	for i, it := range items {
		w := lipgloss.Width(it)
		spans[i] = [2]int{x, x + w}
		x += w
	}
	return spans
}

func (m Model) menuView() string {
	bar := truncate.String(strings.Join(m.menuItems(), ""), uint(m.width))
	return m.style.Menu.Width(m.width).MaxWidth(m.width).Render(bar)
}

func (m Model) dialogView() string {
	switch m.dialog {
	case dialogOpen:
		title := m.style.Title.Render("Open file")
		hint := m.style.MenuKey.Render("enter open · esc cancel")
		return m.style.Dialog.Render(title + "\n" + m.picker.CurrentDirectory + "\n\n" + m.picker.View() + "\n" + hint)
	case dialogSave:
		title := m.style.Title.Render("Save as")
		hint := m.style.MenuKey.Render("enter save · esc cancel")
		return m.style.Dialog.Render(title + "\n\n" + m.input.View() + "\n\n" + hint)
	}
	return ""
}

func (m Model) noticeView() string {
	w := max(min(50, m.width-6), 16)
	body := wordwrap.String(m.notice, w)
	hint := m.style.MenuKey.Render("press any key")
	return m.style.Notice.Render(m.style.Title.Render("Error") + "\n\n" + body + "\n\n" + hint)
}
