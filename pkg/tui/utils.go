package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// panel draws a rounded box of exactly width x height cells with the title
// set into the top border. Long lines wrap; rows that do not fit are clipped.
func panel(title, body string, width, height int, border lipgloss.TerminalColor, titleStyle lipgloss.Style) string {
	if width < 4 || height < 2 {
		return ""
	}
	inner := width - 2
	body = lipgloss.NewStyle().Width(inner).MaxHeight(height - 2).Render(body)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(border).
		Width(inner).
		Height(height - 2).
		Render(body)
	return topBorder(title, width, border, titleStyle) + "\n" + box
}

func topBorder(title string, width int, border lipgloss.TerminalColor, titleStyle lipgloss.Style) string {
	b := lipgloss.RoundedBorder()
	line := lipgloss.NewStyle().Foreground(border)

	label := ""
	if title != "" {
		label = ansi.Truncate(" "+title+" ", width-3, "…")
	}
	fill := max(width-3-ansi.StringWidth(label), 0)
	return line.Render(b.TopLeft+b.Top) + titleStyle.Render(label) + line.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}

// placeOver draws fg on top of bg with its top-left corner at (x, y). bg
// lines are treated as width w.
func placeOver(bg, fg string, w, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, ansi.StringWidth(ln))
	}
	x, y = max(x, 0), max(y, 0)

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		if n := ansi.StringWidth(bgLine); n < w {
			bgLine += strings.Repeat(" ", w-n)
		}
		fgLine := fgLines[i]
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		}
		bgLines[y+i] = ansi.Cut(bgLine, 0, x) + fgLine + ansi.Cut(bgLine, x+fgW, w)
	}
	return strings.Join(bgLines, "\n")
}

// oneLine collapses multi-line diagnostics for single-row display.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
