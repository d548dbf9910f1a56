package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nell/careintake/internal/notify"
)

// toast is one transient notification card. Each carries a unique id so a
// late expiry tick cannot dismiss a newer toast.
type toast struct {
	id    int
	level notify.Level
	text  string
}

type toastExpiredMsg struct{ id int }

// enqueueToasts drains staged notices into the visible queue and schedules
// an expiry tick per toast.
func (m *Model) enqueueToasts() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.notices.Drain() {
		m.toastSeq++
		id := m.toastSeq
		m.toasts = append(m.toasts, toast{id: id, level: n.Level, text: n.Message})
		cmds = append(cmds, tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) expireToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// renderToasts stacks the active toast cards newest-last.
func (m *Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	cards := make([]string, len(m.toasts))
	for i, t := range m.toasts {
		cards[i] = toastStyle(t.level).Render(t.text)
	}
	return lipgloss.JoinVertical(lipgloss.Right, cards...)
}
