package tui

import (
	"context"
	"time"

	"btcdash/pkg/addressbook"
	"btcdash/pkg/rpc"
	"btcdash/pkg/watcher"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set by Start()
var Version = "dev"

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultDebounce     = 120 * time.Millisecond
	defaultStatusTTL    = 2 * time.Second
)

// Options wires the dashboard to its collaborators.
type Options struct {
	Context        context.Context
	Commands       []string
	Executor       rpc.Executor
	Book           *addressbook.Store
	Info           *watcher.Watcher
	DefaultAddress string

	PollInterval time.Duration
	Debounce     time.Duration
	StatusTTL    time.Duration

	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
	// Now defaults to time.Now.
	Now     func() time.Time
	Version string
}

// --- Messages ---

type uiTickMsg time.Time

// --- Model ---

type model struct {
	dash    *dashboard
	overlay *overlay

	keys        dashboardKeyMap
	overlayKeys overlayKeyMap
	help        help.Model

	width  int
	height int

	now          func() time.Time
	lastInput    time.Time
	pollInterval time.Duration
	debounce     time.Duration
	statusTTL    time.Duration
}

func initialModel(opts Options) model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	book := opts.Book
	if book == nil {
		book = addressbook.Open(addressbook.DefaultPath)
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	debounce := opts.Debounce
	if debounce < 0 {
		debounce = defaultDebounce
	}
	ttl := opts.StatusTTL
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}

	ov := newOverlay(ctx, book, opts.Executor, opts.DefaultAddress, copyText, now)
	return model{
		dash:         newDashboard(ctx, opts.Commands, opts.Executor, opts.Info),
		overlay:      ov,
		keys:         defaultDashboardKeys(),
		overlayKeys:  defaultOverlayKeys(ov.input.KeyMap),
		help:         help.New(),
		now:          now,
		pollInterval: poll,
		debounce:     debounce,
		statusTTL:    ttl,
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg { return uiTickMsg(t) })
}
