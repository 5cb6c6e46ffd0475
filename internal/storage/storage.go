// Package storage provides the durable key-value slots the wallet store
// persists into.
package storage

import (
	"context"
	"errors"
)

// Slot keys used by the wallet store
const (
	SlotWallets      = "tsdc_wallets"
	SlotActiveWallet = "tsdc_active_wallet"
)

// ErrCorrupt is returned by Get when the backing document cannot be parsed
var ErrCorrupt = errors.New("storage document is corrupt")

// KV is a durable string-valued key-value store.
type KV interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores all entries in a single atomic write.
	// Either every entry is durable when Put returns nil, or none is.
	Put(ctx context.Context, entries map[string]string) error
}
