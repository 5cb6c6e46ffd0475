package wallet

import (
	"errors"

	"github.com/AlexZinkM/tsdc-wallet/internal/crypto"
)

// Error kinds. Operations wrap these with context, test with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("wallet not found")
	ErrNoActiveWallet = errors.New("no active wallet")
	ErrStorage        = errors.New("storage failure")
	ErrNetwork        = errors.New("network failure")
	ErrTransaction    = errors.New("transaction failed")
)

// ErrInvalidPassword is a validation error raised when a secret cannot be opened
var ErrInvalidPassword = &invalidPasswordError{}

type invalidPasswordError struct{}

func (*invalidPasswordError) Error() string { return crypto.ErrInvalidPassword.Error() }

func (*invalidPasswordError) Is(target error) bool {
	return target == ErrValidation || target == crypto.ErrInvalidPassword
}
