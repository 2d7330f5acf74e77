package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"btcdash/pkg/addressbook"
	"btcdash/pkg/models"
	"btcdash/pkg/watcher"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mainnetAddr = "bc1qfpacvgpjms0eu6mszhwgjjs03yldesmmcgzad0"

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, cmd models.Command) (string, error) {
	args := m.Called(cmd.String())
	return args.String(0), args.Error(1)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	m       model
	ex      *MockExecutor
	book    *addressbook.Store
	clock   *fakeClock
	copied  []string
	copyErr error
}

func newHarness(t *testing.T, commands []string, book *addressbook.Store) *harness {
	t.Helper()
	h := &harness{
		ex:    new(MockExecutor),
		clock: &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	if book == nil {
		book = addressbook.Open(filepath.Join(t.TempDir(), "addresses.json"))
	}
	h.book = book

	h.m = initialModel(Options{
		Commands:       commands,
		Executor:       h.ex,
		Book:           book,
		Info:           watcher.NewWatcher(h.ex),
		DefaultAddress: mainnetAddr,
		Debounce:       120 * time.Millisecond,
		StatusTTL:      2 * time.Second,
		Clipboard: func(s string) error {
			if h.copyErr != nil {
				return h.copyErr
			}
			h.copied = append(h.copied, s)
			return nil
		},
		Now: h.clock.Now,
	})
	h.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(model)
	return cmd
}

// press delivers a key after the debounce window has passed.
func (h *harness) press(k tea.KeyMsg) tea.Cmd {
	h.clock.Advance(200 * time.Millisecond)
	return h.update(k)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestInitialModel_Defaults(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)

	assert.Equal(t, 0, h.m.dash.state.SelectedIndex)
	assert.Empty(t, h.m.dash.state.OutputLines)
	assert.Equal(t, watcher.NodeInfoPlaceholder, h.m.dash.state.NodeInfo)
	assert.False(t, h.m.overlay.state.Open)
	assert.Equal(t, mainnetAddr, h.m.overlay.address())
	assert.Equal(t, -1, h.m.overlay.state.BookIndex)
	assert.Equal(t, 34, h.m.dash.output.Height)
	assert.Equal(t, 76, h.m.dash.output.Width)
}

func TestInit_SchedulesTick(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	assert.NotNil(t, h.m.Init())
	assert.NotNil(t, h.update(uiTickMsg(h.clock.Now())))
}

func TestDebounce(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)

	h.press(runes("h"))
	assert.True(t, h.m.dash.state.HideSensitive)

	h.clock.Advance(50 * time.Millisecond)
	h.update(runes("h"))
	assert.True(t, h.m.dash.state.HideSensitive, "key inside the debounce window must be dropped")

	h.clock.Advance(120 * time.Millisecond)
	h.update(runes("h"))
	assert.False(t, h.m.dash.state.HideSensitive)
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), keyOf(tea.KeyCtrlC)} {
		h := newHarness(t, []string{"getblockcount"}, nil)
		cmd := h.press(k)
		require.NotNil(t, cmd, k.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestOverlayCapturesKeys(t *testing.T) {
	h := newHarness(t, []string{"getblockcount"}, nil)
	h.press(runes("w"))
	require.True(t, h.m.overlay.state.Open)

	h.press(keyOf(tea.KeyEnd))
	cmd := h.press(runes("q"))
	assert.Nil(t, cmd)
	h.press(runes("h"))
	assert.Equal(t, mainnetAddr+"qh", h.m.overlay.address())
	assert.False(t, h.m.dash.state.HideSensitive)

	// ctrl+c copies instead of quitting while the overlay is open.
	cmd = h.press(keyOf(tea.KeyCtrlC))
	assert.Nil(t, cmd)
	assert.Equal(t, []string{mainnetAddr + "qh"}, h.copied)

	h.press(keyOf(tea.KeyEsc))
	assert.False(t, h.m.overlay.state.Open)
	h.ex.AssertNotCalled(t, "Execute", mock.Anything)
}
