package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears the config variables for the duration of the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORE_PATH", "BALANCE_SOURCE", "SOLANA_RPC_URL", "TOKEN_MINT",
		"SEND_DELAY", "SEND_SUCCESS_RATE", "MIN_PASSWORD_LENGTH", "SCRYPT_N",
		"PRICE_API_URL", "PRICE_COIN_ID", "PRICE_CURRENCY", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitDefaults(t *testing.T) {
	unsetEnv(t)

	require.NoError(t, Init())
	c := Get()
	require.Equal(t, "8080", c.Port)
	require.Equal(t, BalanceSourceMock, c.BalanceSource)
	require.Equal(t, 2*time.Second, c.SendDelay)
	require.Equal(t, 0.8, c.SendSuccessRate)
	require.Equal(t, 6, c.MinPasswordLen)
	require.Equal(t, 1<<18, c.ScryptN)
	require.Equal(t, "tsdc-wallet.json", GetStorePath())
	require.Equal(t, "8080", GetPort())
}

func TestInitFromEnv(t *testing.T) {
	unsetEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BALANCE_SOURCE", "rpc")
	t.Setenv("SEND_DELAY", "150ms")
	t.Setenv("SCRYPT_N", "1024")

	require.NoError(t, Init())
	c := Get()
	require.Equal(t, "9090", c.Port)
	require.Equal(t, BalanceSourceRPC, c.BalanceSource)
	require.Equal(t, 150*time.Millisecond, c.SendDelay)
	require.Equal(t, 1024, c.ScryptN)
}

func TestInitRejectsInvalid(t *testing.T) {
	tests := []struct{ key, value string }{
		{"BALANCE_SOURCE", "carrier-pigeon"},
		{"SEND_SUCCESS_RATE", "1.5"},
		{"SCRYPT_N", "1000"},
		{"SCRYPT_N", "1073741824"},
		{"MIN_PASSWORD_LENGTH", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetEnv(t)
			t.Setenv(tt.key, tt.value)
			require.Error(t, Init())
		})
	}
}
