package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testOwner = solana.NewWallet().PublicKey().String()

func TestMockBalancesRange(t *testing.T) {
	ctx := context.Background()
	for _, r := range []float64{0, 0.5, 0.9999999999999999} {
		m := NewMockBalances(func() float64 { return r })
		b, err := m.Balance(ctx, "anything")
		require.NoError(t, err)
		require.False(t, b.IsNegative())
		require.True(t, b.LessThan(decimal.NewFromInt(1000)), "got %s", b)
	}

	m := NewMockBalances(nil)
	for range 100 {
		b, err := m.Balance(ctx, "anything")
		require.NoError(t, err)
		require.False(t, b.IsNegative())
		require.True(t, b.LessThan(decimal.NewFromInt(1000)))
	}
}

func TestMockSenderOutcomes(t *testing.T) {
	log := zaptest.NewLogger(t)
	amount := decimal.NewFromInt(3)

	ok := NewMockSender(time.Millisecond, 0.8, func() float64 { return 0.1 }, log)
	sig, err := ok.Send(context.Background(), "from", "to", amount)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	unlucky := NewMockSender(time.Millisecond, 0.8, func() float64 { return 0.8 }, log)
	_, err = unlucky.Send(context.Background(), "from", "to", amount)
	require.ErrorIs(t, err, ErrTransactionFailed)
}

func TestMockSenderHonoursContext(t *testing.T) {
	s := NewMockSender(time.Hour, 1, nil, zaptest.NewLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Send(ctx, "from", "to", decimal.NewFromInt(1))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCoinGeckoGetPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/simple/price", r.URL.Path)
		require.Equal(t, "tsdcoin", r.URL.Query().Get("ids"))
		require.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"tsdcoin":{"usd":0.0123}}`)
	}))
	defer srv.Close()

	price, err := NewCoinGeckoClient(srv.URL).GetPrice(context.Background(), "tsdcoin", "usd")
	require.NoError(t, err)
	require.Equal(t, "0.0123", price.String())

	_, err = NewCoinGeckoClient(srv.URL).GetPrice(context.Background(), "tsdcoin", "eur")
	require.Error(t, err)
}

func TestCoinGeckoBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewCoinGeckoClient(srv.URL).GetPrice(context.Background(), "tsdcoin", "usd")
	require.Error(t, err)
}

// rpcServer answers getTokenAccountBalance with the given result or error
func rpcServer(t *testing.T, result, rpcErr any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     any    `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "getTokenAccountBalance", req.Method)

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestSolanaClientBalance(t *testing.T) {
	srv := rpcServer(t, map[string]any{
		"context": map[string]any{"slot": 1},
		"value": map[string]any{
			"amount":         "1500000000",
			"decimals":       9,
			"uiAmountString": "1.5",
		},
	}, nil)
	defer srv.Close()

	c, err := NewSolanaClient(srv.URL, TSDCMintAddress, zaptest.NewLogger(t))
	require.NoError(t, err)

	b, err := c.Balance(context.Background(), testOwner)
	require.NoError(t, err)
	require.Equal(t, "1.5", b.String())
}

func TestSolanaClientMissingTokenAccount(t *testing.T) {
	srv := rpcServer(t, nil, map[string]any{
		"code":    -32602,
		"message": "Invalid param: could not find account",
	})
	defer srv.Close()

	c, err := NewSolanaClient(srv.URL, TSDCMintAddress, zaptest.NewLogger(t))
	require.NoError(t, err)

	b, err := c.Balance(context.Background(), testOwner)
	require.NoError(t, err)
	require.True(t, b.IsZero())
}

func TestSolanaClientRejectsBadInput(t *testing.T) {
	_, err := NewSolanaClient("http://127.0.0.1:0", "bad mint", zaptest.NewLogger(t))
	require.Error(t, err)

	c, err := NewSolanaClient("http://127.0.0.1:0", TSDCMintAddress, zaptest.NewLogger(t))
	require.NoError(t, err)
	_, err = c.Balance(context.Background(), "bad address")
	require.Error(t, err)
}
