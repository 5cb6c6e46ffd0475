package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TSDCDecimals    = 9 // TSDC is an SPL token with 9 decimals
	DisplayDecimals = 4

	// maxAmountLen bounds user input; the TSDC supply fits in far fewer digits
	maxAmountLen = 40
)

// ErrInvalidAmount is returned for amounts that are not positive numbers
var ErrInvalidAmount = errors.New("please enter a valid amount")

// ParseAmount parses a user-entered TSDC amount.
// The amount must be a positive plain decimal (no exponent notation) of at
// most maxAmountLen characters; digits beyond TSDCDecimals are truncated.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// exponents like 1e20000000 make every later comparison rescale a huge number
	if len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %.40s", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	d = d.Truncate(TSDCDecimals)
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// RawToAmount converts an integer amount in base units to a decimal token amount
// Example: RawToAmount("24981836", 9) = 0.024981836
func RawToAmount(raw string, decimals int) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid raw amount %q: %w", raw, err)
	}
	if !d.Equal(d.Truncate(0)) || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid raw amount %q", raw)
	}
	return d.Shift(int32(-decimals)), nil
}

// FormatAmount renders an amount with exactly TSDCDecimals fractional digits
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(TSDCDecimals)
}

// DisplayAmount renders an amount the way the wallet screens show it
func DisplayAmount(d decimal.Decimal) string {
	return d.StringFixed(DisplayDecimals) + " TSDC"
}
