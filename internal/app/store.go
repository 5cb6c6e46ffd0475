// Package app wires a wallet.Store from configuration for the server and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/tsdc-wallet/internal/client"
	"github.com/AlexZinkM/tsdc-wallet/internal/config"
	"github.com/AlexZinkM/tsdc-wallet/internal/crypto"
	"github.com/AlexZinkM/tsdc-wallet/internal/storage"
	"github.com/AlexZinkM/tsdc-wallet/internal/wallet"

	"go.uber.org/zap"
)

// BalanceSource returns the balance source named by cfg.BalanceSource
func BalanceSource(cfg *config.Config, log *zap.Logger) (wallet.BalanceSource, error) {
	switch cfg.BalanceSource {
	case config.BalanceSourceMock:
		return client.NewMockBalances(nil), nil
	case config.BalanceSourceRPC:
		return client.NewSolanaClient(cfg.SolanaRPCURL, cfg.TokenMint, log)
	default:
		return nil, fmt.Errorf("unknown balance source %q", cfg.BalanceSource)
	}
}

// OpenStore builds the file-backed wallet store described by cfg and loads it.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*wallet.Store, error) {
	kv, err := storage.NewFile(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	sealer, err := crypto.NewSealer(cfg.ScryptN)
	if err != nil {
		return nil, err
	}
	balances, err := BalanceSource(cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := wallet.Open(ctx, wallet.Options{
		Storage:        kv,
		Balances:       balances,
		Sender:         client.NewMockSender(cfg.SendDelay, cfg.SendSuccessRate, nil, log),
		Sealer:         sealer,
		MinPasswordLen: cfg.MinPasswordLen,
		Logger:         log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet store: %w", err)
	}
	return store, nil
}
