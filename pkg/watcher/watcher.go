package watcher

import (
	"context"
	"sync"

	"btcdash/pkg/logging"
	"btcdash/pkg/rpc"

	"go.uber.org/zap"
)

const (
	NodeInfoPlaceholder   = "Failed to fetch node info"
	WalletInfoPlaceholder = "Failed to fetch wallet info"
)

// DataSource defines the interface for fetching the info panel texts.
type DataSource interface {
	FetchNodeInfo(ctx context.Context) (string, error)
	FetchWalletInfo(ctx context.Context) (string, error)
}

// RealDataSource implements DataSource on top of a query executor.
type RealDataSource struct {
	Executor rpc.Executor
}

func (d *RealDataSource) FetchNodeInfo(ctx context.Context) (string, error) {
	return rpc.FetchNodeInfo(ctx, d.Executor)
}

func (d *RealDataSource) FetchWalletInfo(ctx context.Context) (string, error) {
	return rpc.FetchWalletInfo(ctx, d.Executor)
}

// Watcher caches the node and wallet info texts. A failed fetch keeps the
// last good text; before the first success a placeholder is shown instead.
type Watcher struct {
	mu         sync.RWMutex
	dataSource DataSource

	nodeInfo   string
	walletInfo string
	nodeOK     bool
	walletOK   bool
}

// NewWatcher creates a Watcher that reads through the given executor.
func NewWatcher(ex rpc.Executor) *Watcher {
	return &Watcher{
		dataSource: &RealDataSource{Executor: ex},
		nodeInfo:   NodeInfoPlaceholder,
		walletInfo: WalletInfoPlaceholder,
	}
}

// SetDataSource allows overriding the data source (useful for testing).
func (w *Watcher) SetDataSource(ds DataSource) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dataSource = ds
}

// Refresh fetches both texts. The two fetches fail independently.
func (w *Watcher) Refresh(ctx context.Context) {
	w.mu.RLock()
	ds := w.dataSource
	w.mu.RUnlock()

	node, nodeErr := ds.FetchNodeInfo(ctx)
	wallet, walletErr := ds.FetchWalletInfo(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if nodeErr != nil {
		logging.Warn("node info fetch failed", zap.Error(nodeErr), zap.Bool("stale", w.nodeOK))
	} else {
		w.nodeInfo = node
		w.nodeOK = true
	}

	if walletErr != nil {
		logging.Warn("wallet info fetch failed", zap.Error(walletErr), zap.Bool("stale", w.walletOK))
	} else {
		w.walletInfo = wallet
		w.walletOK = true
	}
}

// NodeInfo returns the current node panel text.
func (w *Watcher) NodeInfo() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.nodeInfo
}

// WalletInfo returns the current wallet panel text, unmasked.
func (w *Watcher) WalletInfo() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.walletInfo
}

// Loaded reports whether each text has been fetched successfully at least once.
func (w *Watcher) Loaded() (node, wallet bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.nodeOK, w.walletOK
}
