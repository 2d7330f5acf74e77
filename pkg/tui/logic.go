package tui

const (
	helpHeight   = 4
	infoHeight   = 7
	leftPercent  = 35
	inputHeight  = 3
	listRowLimit = 22
)

// layout is the panel geometry for a terminal of a given size. Every
// height includes the panel's borders.
type layout struct {
	width, height int

	mainHeight     int
	leftWidth      int
	rightWidth     int
	commandsHeight int
	outputVisible  int

	overlay overlayLayout
}

type overlayLayout struct {
	x, y          int
	width, height int
	leftWidth     int
	rightWidth    int
	columnsHeight int
	qrHeight      int
}

func computeLayout(width, height int) layout {
	l := layout{width: max(width, 0), height: max(height, 0)}
	l.mainHeight = max(l.height-helpHeight, 0)
	l.leftWidth = l.width * leftPercent / 100
	l.rightWidth = l.width - l.leftWidth
	l.commandsHeight = max(l.mainHeight-2*infoHeight, 0)
	l.outputVisible = max(l.mainHeight-2, 0)
	l.overlay = computeOverlayLayout(l.width, l.height)
	return l
}

// computeOverlayLayout centres an 80% x 75% box. Inside its border the
// columns split 60/40 and one row is kept for the status line.
func computeOverlayLayout(width, height int) overlayLayout {
	o := overlayLayout{
		width:  width * 80 / 100,
		height: height * 75 / 100,
	}
	o.x = (width - o.width) / 2
	o.y = (height - o.height) / 2

	inner := max(o.width-2, 0)
	o.leftWidth = inner * 60 / 100
	o.rightWidth = inner - o.leftWidth
	o.columnsHeight = max(o.height-3, 0)
	o.qrHeight = max(o.columnsHeight-inputHeight, 0)
	return o
}

// windowStart picks the first visible row so that selected stays on screen.
func windowStart(selected, rows int) int {
	if rows <= 0 || selected < rows {
		return 0
	}
	return selected - rows + 1
}
