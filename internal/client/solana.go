package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlexZinkM/tsdc-wallet/internal/common"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TSDCMintAddress is the TSDC SPL token mint on Solana mainnet
const TSDCMintAddress = "7YCWYFDaKACX2Lqac2k8XV9v5nRdsMLwrDfeaUWSTfjv"

// SolanaClient reads token balances from a Solana RPC node
type SolanaClient struct {
	rpcClient     *rpc.Client
	rpcURL        string
	mintPublicKey solana.PublicKey
	log           *zap.Logger
}

// NewSolanaClient creates a client that reports balances of the given mint.
func NewSolanaClient(rpcURL, mint string, log *zap.Logger) (*SolanaClient, error) {
	mintPubKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid token mint address: %w", err)
	}

	return &SolanaClient{
		rpcClient:     rpc.New(rpcURL),
		rpcURL:        rpcURL,
		mintPublicKey: mintPubKey,
		log:           log.Named("solana"),
	}, nil
}

// Balance gets the token balance of address from its associated token account.
// An address without a token account holds zero.
func (c *SolanaClient) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	ownerPubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid Solana address: %w", err)
	}

	ataAddress, _, err := solana.FindAssociatedTokenAddress(ownerPubkey, c.mintPublicKey)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	balance, err := c.rpcClient.GetTokenAccountBalance(ctx, ataAddress, rpc.CommitmentConfirmed)
	if err != nil {
		if isATANotFoundError(err) {
			c.log.Debug("token account not found, reporting zero balance",
				zap.String("address", address), zap.String("ata", ataAddress.String()))
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to get token account balance: %w", err)
	}

	if balance == nil || balance.Value == nil {
		return decimal.Zero, nil
	}

	amount, err := common.RawToAmount(balance.Value.Amount, int(balance.Value.Decimals))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse token balance amount: %w", err)
	}
	return amount, nil
}

// isATANotFoundError checks if error indicates that token account doesn't exist
func isATANotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
