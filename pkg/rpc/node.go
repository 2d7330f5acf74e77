package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"btcdash/pkg/models"
	"btcdash/pkg/utils"
)

// FetchNodeInfo builds the node panel text from uptime, block count and
// best block hash. A failing uptime call counts as zero.
func FetchNodeInfo(ctx context.Context, ex Executor) (string, error) {
	var uptime uint64
	if out, err := ex.Execute(ctx, models.Command{Name: "uptime"}); err == nil {
		uptime, _ = strconv.ParseUint(strings.TrimSpace(out), 10, 64)
	}

	blockCount, err := ex.Execute(ctx, models.Command{Name: "getblockcount"})
	if err != nil {
		return "", err
	}
	bestHash, err := ex.Execute(ctx, models.Command{Name: "getbestblockhash"})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Uptime: %s\nBlock Count: %s\nBest Block Hash:\n%s",
		utils.FormatUptime(uptime),
		strings.TrimSpace(blockCount),
		strings.TrimSpace(bestHash),
	), nil
}

type walletInfo struct {
	WalletName  *string  `json:"walletname"`
	Balance     *float64 `json:"balance"`
	TxCount     *uint64  `json:"txcount"`
	KeypoolSize *uint64  `json:"keypoolsize"`
}

// FetchWalletInfo summarises getwalletinfo. Missing fields fall back to
// N/A or zero.
func FetchWalletInfo(ctx context.Context, ex Executor) (string, error) {
	out, err := ex.Execute(ctx, models.Command{Name: "getwalletinfo"})
	if err != nil {
		return "", err
	}
	var info walletInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return "", fmt.Errorf("decode getwalletinfo: %w", err)
	}

	name := "N/A"
	if info.WalletName != nil {
		name = *info.WalletName
	}
	var balance float64
	if info.Balance != nil {
		balance = *info.Balance
	}
	var txCount, keypool uint64
	if info.TxCount != nil {
		txCount = *info.TxCount
	}
	if info.KeypoolSize != nil {
		keypool = *info.KeypoolSize
	}

	return fmt.Sprintf("Wallet: %s\nBalance: %.8f BTC\nTransactions: %d\nKeypool Size: %d",
		name, balance, txCount, keypool), nil
}
