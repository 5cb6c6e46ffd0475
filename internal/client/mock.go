package client

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	mathrand "math/rand/v2"
	"time"

	"github.com/AlexZinkM/tsdc-wallet/internal/common"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const mockBalanceCeiling = 1000

// ErrTransactionFailed is the outcome of an unlucky mock send
var ErrTransactionFailed = errors.New("transaction failed. please try again")

// MockBalances returns a random balance in [0, 1000) regardless of address.
// It stands in for SolanaClient when no network is wanted.
type MockBalances struct {
	rand func() float64
}

// NewMockBalances creates a mock balance source. A nil rnd uses math/rand.
func NewMockBalances(rnd func() float64) *MockBalances {
	if rnd == nil {
		rnd = mathrand.Float64
	}
	return &MockBalances{rand: rnd}
}

func (m *MockBalances) Balance(ctx context.Context, _ string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(m.rand() * mockBalanceCeiling).Truncate(common.TSDCDecimals), nil
}

// MockSender pretends to submit a transfer: after a fixed delay it succeeds
// with probability successRate and returns a random signature.
type MockSender struct {
	delay       time.Duration
	successRate float64
	rand        func() float64
	log         *zap.Logger
}

// NewMockSender creates a mock sender. A nil rnd uses math/rand.
func NewMockSender(delay time.Duration, successRate float64, rnd func() float64, log *zap.Logger) *MockSender {
	if rnd == nil {
		rnd = mathrand.Float64
	}
	return &MockSender{
		delay:       delay,
		successRate: successRate,
		rand:        rnd,
		log:         log.Named("mock-sender"),
	}
}

func (m *MockSender) Send(ctx context.Context, from, to string, amount decimal.Decimal) (string, error) {
	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if m.rand() >= m.successRate {
		m.log.Info("mock transfer rejected",
			zap.String("from", from), zap.String("to", to), zap.String("amount", amount.String()))
		return "", ErrTransactionFailed
	}

	raw := make([]byte, 64)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate signature: %w", err)
	}
	sig := solana.SignatureFromBytes(raw).String()

	m.log.Info("mock transfer accepted",
		zap.String("from", from), zap.String("to", to),
		zap.String("amount", amount.String()), zap.String("txId", sig))
	return sig, nil
}
