package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileMissingIsEmpty(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)

	_, ok, err := f.Get(context.Background(), SlotWallets)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilePutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wallet.json")
	f, err := NewFile(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Put(ctx, map[string]string{
		SlotWallets:      `[{"id":"1"}]`,
		SlotActiveWallet: "1",
	}))
	require.NoError(t, f.Put(ctx, map[string]string{SlotActiveWallet: "2"}))

	// a fresh handle sees what the first one wrote
	reopened, err := NewFile(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, SlotWallets)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"1"}]`, v)

	v, ok, err = reopened.Get(ctx, SlotActiveWallet)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", v)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileSkipsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"tsdc_active_wallet":"abc"}`)...)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)
	v, ok, err := f.Get(context.Background(), SlotActiveWallet)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestFileCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)
	_, _, err = f.Get(context.Background(), SlotWallets)
	require.ErrorIs(t, err, ErrCorrupt)

	// the next write starts a fresh document and keeps the old bytes aside
	require.NoError(t, f.Put(context.Background(), map[string]string{SlotActiveWallet: "x"}))
	v, ok, err := f.Get(context.Background(), SlotActiveWallet)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", v)

	backup, err := os.ReadFile(f.BackupPath())
	require.NoError(t, err)
	require.Equal(t, "{not json", string(backup))
}

func TestNewFileRequiresPath(t *testing.T) {
	_, err := NewFile("")
	require.Error(t, err)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, map[string]string{SlotWallets: "[]"}))
	v, ok, err := m.Get(ctx, SlotWallets)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", v)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, m.Put(cancelled, map[string]string{SlotWallets: "x"}))
	_, _, err = m.Get(cancelled, SlotWallets)
	require.Error(t, err)
}
