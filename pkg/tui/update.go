package tui

import (
	"btcdash/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-4, 0)
		l := computeLayout(msg.Width, msg.Height)
		m.dash.setViewSize(max(l.rightWidth-2, 0), l.outputVisible)
		m.overlay.setInputWidth(l.overlay.leftWidth - 2)
		return m, nil

	case uiTickMsg:
		// Nothing changes; the re-render keeps status expiry current.
		return m, m.tick()

	case tea.KeyMsg:
		now := m.now()
		if !m.lastInput.IsZero() && now.Sub(m.lastInput) < m.debounce {
			return m, nil
		}
		m.lastInput = now

		if m.overlay.state.Open {
			m.updateOverlay(msg)
			return m, nil
		}
		return m.updateDashboard(msg)
	}
	return m, nil
}

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Info("quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.dash.selectNext()
	case key.Matches(msg, m.keys.Up):
		m.dash.selectPrevious()
	case key.Matches(msg, m.keys.Run):
		m.dash.runSelected()
	case key.Matches(msg, m.keys.ScrollDown):
		m.dash.scroll(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.dash.scroll(-1)
	case key.Matches(msg, m.keys.Overlay):
		m.overlay.open()
	case key.Matches(msg, m.keys.Refresh):
		m.dash.refresh()
	case key.Matches(msg, m.keys.Mask):
		m.dash.toggleHideSensitive()
	}
	return m, nil
}

// updateOverlay handles a key while the overlay has focus. The dashboard
// never sees these keys.
func (m model) updateOverlay(msg tea.KeyMsg) {
	o := m.overlay
	switch {
	case key.Matches(msg, m.overlayKeys.NewSave):
		o.fetchNewAndSave()
	case key.Matches(msg, m.overlayKeys.GetNew):
		o.fetchNew()
	case key.Matches(msg, m.overlayKeys.Copy):
		o.copyAddress()
	case key.Matches(msg, m.overlayKeys.Close):
		o.close()
	case key.Matches(msg, m.overlayKeys.BookUp):
		o.bookUp()
	case key.Matches(msg, m.overlayKeys.BookDown):
		o.bookDown()
	default:
		o.edit(msg)
	}
}
