package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/tsdc-wallet/internal/crypto"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

const (
	BalanceSourceMock = "mock"
	BalanceSourceRPC  = "rpc"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	StorePath       string        `envconfig:"STORE_PATH" default:"tsdc-wallet.json"`
	BalanceSource   string        `envconfig:"BALANCE_SOURCE" default:"mock"`
	SolanaRPCURL    string        `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	TokenMint       string        `envconfig:"TOKEN_MINT" default:"7YCWYFDaKACX2Lqac2k8XV9v5nRdsMLwrDfeaUWSTfjv"`
	SendDelay       time.Duration `envconfig:"SEND_DELAY" default:"2s"`
	SendSuccessRate float64       `envconfig:"SEND_SUCCESS_RATE" default:"0.8"`
	MinPasswordLen  int           `envconfig:"MIN_PASSWORD_LENGTH" default:"6"`
	ScryptN         int           `envconfig:"SCRYPT_N" default:"262144"`
	PriceAPIURL     string        `envconfig:"PRICE_API_URL" default:"https://api.coingecko.com/api/v3"`
	PriceCoinID     string        `envconfig:"PRICE_COIN_ID" default:"tsdcoin"`
	PriceCurrency   string        `envconfig:"PRICE_CURRENCY" default:"usd"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks values envconfig cannot check by type alone
func (c *Config) Validate() error {
	switch c.BalanceSource {
	case BalanceSourceMock, BalanceSourceRPC:
	default:
		return fmt.Errorf("BALANCE_SOURCE must be %q or %q", BalanceSourceMock, BalanceSourceRPC)
	}
	if c.SendSuccessRate < 0 || c.SendSuccessRate > 1 {
		return errors.New("SEND_SUCCESS_RATE must be between 0 and 1")
	}
	if c.SendDelay < 0 {
		return errors.New("SEND_DELAY must not be negative")
	}
	if c.MinPasswordLen < 1 {
		return errors.New("MIN_PASSWORD_LENGTH must be positive")
	}
	if c.ScryptN <= 1 || c.ScryptN > crypto.MaxScryptN || c.ScryptN&(c.ScryptN-1) != 0 {
		return fmt.Errorf("SCRYPT_N must be a power of two between 2 and %d", crypto.MaxScryptN)
	}
	if c.StorePath == "" {
		return errors.New("STORE_PATH must not be empty")
	}
	return nil
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetStorePath returns path to the wallet storage file from configuration
func GetStorePath() string {
	return Get().StorePath
}

// ReadPassword prompts for a password in the terminal without echoing it.
// Caller must zero the returned slice after use for security.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
