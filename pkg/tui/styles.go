package tui

import "github.com/charmbracelet/lipgloss"

// --- Styles ---
var (
	accentColor  = lipgloss.Color("#FFA500")
	borderColor  = lipgloss.Color("#874BFD")
	validColor   = lipgloss.Color("#04B575")
	invalidColor = lipgloss.Color("#FF0000")
	emptyColor   = lipgloss.Color("#FFD700")

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(validColor)
	errStyle      = lipgloss.NewStyle().Foreground(invalidColor)
	selectedStyle = lipgloss.NewStyle().Foreground(emptyColor).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)
