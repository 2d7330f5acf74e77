package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
)

// dashboardKeyMap holds the bindings active while the overlay is closed.
type dashboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Run        key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Overlay    key.Binding
	Refresh    key.Binding
	Mask       key.Binding
	Quit       key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "select command"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "pgdown"),
			key.WithHelp("j/k", "scroll output"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "pgup"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "QR overlay"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Mask: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide/show amounts"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Run, k.Refresh, k.ScrollDown, k.Mask, k.Overlay, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run, k.Refresh},
		{k.ScrollDown, k.ScrollUp, k.Mask, k.Overlay, k.Quit},
	}
}

// overlayKeyMap holds the bindings active while the address overlay is open.
// Every other key goes to the address input. Move and Edit only describe the
// input's own bindings in the help bar.
type overlayKeyMap struct {
	NewSave  key.Binding
	GetNew   key.Binding
	Copy     key.Binding
	BookUp   key.Binding
	BookDown key.Binding
	Close    key.Binding

	Move key.Binding
	Edit key.Binding
}

func defaultOverlayKeys(input textinput.KeyMap) overlayKeyMap {
	k := overlayKeyMap{
		NewSave: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new(save)"),
		),
		GetNew: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "getnew"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy"),
		),
		BookUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "select saved"),
		),
		BookDown: key.NewBinding(
			key.WithKeys("down"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+x", "esc"),
			key.WithHelp("ctrl+x", "close"),
		),
		Move: input.CharacterBackward,
		Edit: input.DeleteCharacterBackward,
	}
	k.Move.SetHelp("←/→ home end", "move")
	k.Edit.SetHelp("bksp/del", "edit")
	return k
}

func (k overlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewSave, k.GetNew, k.Copy, k.BookUp, k.Move, k.Edit, k.Close}
}

func (k overlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewSave, k.GetNew, k.Copy, k.Close},
		{k.BookUp, k.BookDown, k.Move, k.Edit},
	}
}
