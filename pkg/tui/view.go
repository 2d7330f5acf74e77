package tui

import (
	"fmt"
	"strings"

	"btcdash/pkg/models"
	"btcdash/pkg/qr"
	"btcdash/pkg/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := computeLayout(m.width, m.height)
	s := m.dash.state

	left := stack(
		panel("Node Info", s.NodeInfo, l.leftWidth, infoHeight, borderColor, titleStyle),
		panel("Wallet Info", s.walletText(), l.leftWidth, infoHeight, borderColor, titleStyle),
		panel("Commands", m.viewCommands(l.leftWidth-2, l.commandsHeight-2), l.leftWidth, l.commandsHeight, borderColor, titleStyle),
	)
	output := panel("Output", m.dash.output.View(), l.rightWidth, l.mainHeight, borderColor, titleStyle)

	screen := stack(
		lipgloss.JoinHorizontal(lipgloss.Top, left, output),
		panel("Help · btcdash "+Version, m.viewHelp(), l.width, helpHeight, accentColor, accentStyle),
	)

	if m.overlay.state.Open {
		ol := l.overlay
		screen = placeOver(screen, m.viewOverlay(ol), l.width, ol.x, ol.y)
	}
	return lipgloss.NewStyle().MaxHeight(m.height).Render(screen)
}

func (m model) viewCommands(width, rows int) string {
	cmds := m.dash.commands
	selected := m.dash.state.SelectedIndex
	start := windowStart(selected, rows)

	var lines []string
	for i := start; i < len(cmds) && i < start+rows; i++ {
		line := ansi.Truncate(cmds[i], width, "…")
		if i == selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m model) viewHelp() string {
	if m.overlay.state.Open {
		return accentStyle.Render("Overlay keys:") + "\n" + m.help.ShortHelpView(m.overlayKeys.ShortHelp())
	}
	return accentStyle.Render("Main keys:") + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// validityTitles gives the input and QR box titles for a validity class,
// and the style both titles share.
func validityTitles(v models.Validity) (input, qrTitle string, style lipgloss.Style) {
	switch v.Kind {
	case models.Valid:
		return "BTC Address — VALID",
			fmt.Sprintf("Bitcoin QR Code — VALID (%s)", v.Network),
			lipgloss.NewStyle().Foreground(validColor)
	case models.Invalid:
		return "BTC Address — INVALID",
			"Bitcoin QR Code — INVALID",
			lipgloss.NewStyle().Foreground(invalidColor)
	default:
		return "BTC Address",
			"Bitcoin QR Code — (enter an address)",
			lipgloss.NewStyle().Foreground(emptyColor)
	}
}

func (m model) viewOverlay(ol overlayLayout) string {
	v := m.overlay.validity()
	inputTitle, qrTitle, tone := validityTitles(v)

	editor := stack(
		panel(inputTitle, m.overlay.input.View(), ol.leftWidth, inputHeight, accentColor, tone),
		panel(qrTitle, m.viewQR(v, ol.leftWidth-2, ol.qrHeight-2), ol.leftWidth, ol.qrHeight, accentColor, tone),
	)
	list := panel("Addresses (↑/↓ select)", m.viewBook(ol.rightWidth-2, ol.columnsHeight-2),
		ol.rightWidth, ol.columnsHeight, accentColor, titleStyle)

	body := stack(
		lipgloss.JoinHorizontal(lipgloss.Top, editor, list),
		m.viewStatus(ol.width-2),
	)
	return panel("Address Book & QR (edit left • list right)", body, ol.width, ol.height, accentColor, accentStyle)
}

func (m model) viewQR(v models.Validity, width, height int) string {
	if !v.IsValid() {
		return dimStyle.Render("QR hidden until the address is valid")
	}
	code, err := qr.Render(strings.TrimSpace(m.overlay.address()))
	if err != nil {
		return errStyle.Render(oneLine(err.Error()))
	}
	if lipgloss.Width(code) > width || lipgloss.Height(code) > height {
		return subtleStyle.Render("Terminal too small for the QR code")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, code)
}

func (m model) viewBook(width, rows int) string {
	book := m.overlay.book
	if book.Len() == 0 {
		return subtleStyle.Render("No saved addresses (ctrl+n creates one)")
	}

	selected := m.overlay.state.BookIndex
	start := windowStart(selected, rows)
	var lines []string
	for i := start; i < book.Len() && i < start+rows; i++ {
		e := book.At(i)
		row := fmt.Sprintf("%s  %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			utils.ShortenMiddle(e.Address, listRowLimit, 12, 8))
		row = ansi.Truncate(row, width, "…")
		if i == selected {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m model) viewStatus(width int) string {
	text, isErr, ok := m.overlay.statusLine(m.statusTTL)
	if !ok {
		return subtleStyle.Render(ansi.Truncate("type to edit • ctrl+x/esc to close", width, "…"))
	}
	text = ansi.Truncate(oneLine(text), width, "…")
	if isErr {
		return errStyle.Render(text)
	}
	return infoStyle.Render(text)
}

// stack joins blocks vertically, skipping empty ones.
func stack(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
