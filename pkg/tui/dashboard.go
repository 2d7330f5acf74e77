package tui

import (
	"context"
	"strings"

	"btcdash/pkg/command"
	"btcdash/pkg/logging"
	"btcdash/pkg/rpc"
	"btcdash/pkg/utils"
	"btcdash/pkg/watcher"

	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"
)

// DashboardState is everything the main screen shows. It is only touched
// from the event loop.
type DashboardState struct {
	SelectedIndex int
	OutputLines   []string
	ScrollOffset  int
	NodeInfo      string
	WalletInfo    string
	HideSensitive bool
}

type dashboard struct {
	state    DashboardState
	commands []string
	exec     rpc.Executor
	info     *watcher.Watcher
	ctx      context.Context

	// output owns the scroll position; state.ScrollOffset mirrors its YOffset.
	output viewport.Model
}

func newDashboard(ctx context.Context, commands []string, ex rpc.Executor, info *watcher.Watcher) *dashboard {
	if info == nil {
		info = watcher.NewWatcher(ex)
	}
	return &dashboard{
		state: DashboardState{
			OutputLines: []string{},
			NodeInfo:    info.NodeInfo(),
			WalletInfo:  info.WalletInfo(),
		},
		commands: commands,
		exec:     ex,
		info:     info,
		ctx:      ctx,
		output:   viewport.New(0, 1),
	}
}

func (d *dashboard) selectNext() {
	if d.state.SelectedIndex >= len(d.commands)-1 {
		return
	}
	d.state.SelectedIndex++
	d.runSelected()
}

func (d *dashboard) selectPrevious() {
	if d.state.SelectedIndex <= 0 {
		return
	}
	d.state.SelectedIndex--
	d.runSelected()
}

// runSelected replaces the output with the result of the selected command.
// Failures become a single output line.
func (d *dashboard) runSelected() {
	if len(d.commands) == 0 {
		d.setOutput([]string{})
		return
	}

	line := d.commands[d.state.SelectedIndex]
	cmd, err := command.Parse(line)
	if err != nil {
		d.setOutput([]string{"Error: " + err.Error()})
		return
	}

	logging.Debug("running query", zap.String("command", cmd.String()))
	out, err := d.exec.Execute(d.ctx, cmd)
	if err != nil {
		logging.Warn("query failed", zap.String("command", cmd.Name), zap.Error(err))
		d.setOutput([]string{strings.Join(utils.SplitLines(err.Error()), " ")})
		return
	}
	d.setOutput(utils.SplitLines(out))
}

// setOutput replaces the output and scrolls back to the top.
func (d *dashboard) setOutput(lines []string) {
	d.state.OutputLines = lines
	d.output.SetContent(strings.Join(lines, "\n"))
	d.output.GotoTop()
	d.state.ScrollOffset = d.output.YOffset
}

// refresh re-runs the selected command and re-fetches both info panels.
func (d *dashboard) refresh() {
	d.runSelected()
	d.info.Refresh(d.ctx)
	d.state.NodeInfo = d.info.NodeInfo()
	d.state.WalletInfo = d.info.WalletInfo()
}

// scroll moves the output window by delta lines. The viewport stops once
// the last line reaches the bottom row.
func (d *dashboard) scroll(delta int) {
	switch {
	case delta > 0:
		d.output.ScrollDown(delta)
	case delta < 0:
		d.output.ScrollUp(-delta)
	}
	d.state.ScrollOffset = d.output.YOffset
}

// setViewSize fits the output window to the panel. At least one row stays
// visible however small the terminal gets.
func (d *dashboard) setViewSize(width, height int) {
	d.output.Width = max(width, 0)
	d.output.Height = max(height, 1)
	d.output.SetYOffset(d.output.YOffset)
	d.state.ScrollOffset = d.output.YOffset
}

func (d *dashboard) toggleHideSensitive() {
	d.state.HideSensitive = !d.state.HideSensitive
}

// walletText is the wallet panel as displayed, masked when hiding is on.
func (s DashboardState) walletText() string {
	if s.HideSensitive {
		return utils.MaskDigits(s.WalletInfo)
	}
	return s.WalletInfo
}
