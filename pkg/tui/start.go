package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Start loads the first command output and info panels, then runs the
// dashboard until the operator quits.
func Start(opts Options) error {
	if opts.Version != "" {
		Version = opts.Version
	}
	m := initialModel(opts)
	m.dash.refresh()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
