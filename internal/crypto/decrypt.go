package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/tsdc-wallet/internal/model"
)

// ErrInvalidPassword is returned by Open when authentication fails
var ErrInvalidPassword = errors.New("invalid password")

// Open decrypts a value produced by Seal.
// Cost parameters are read from the stored envelope, not from the Sealer.
// Caller should zero the returned secret after use.
func (s *Sealer) Open(sealed string, password []byte) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode protected secret: %w", err)
	}

	var envelope model.ProtectedSecret
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal protected secret: %w", err)
	}
	if envelope.KDF != kdfScrypt {
		return nil, fmt.Errorf("unsupported kdf %q", envelope.KDF)
	}
	if err := checkParams(envelope.N, envelope.R, envelope.P); err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	if len(nonce) != nonceLen {
		return nil, errors.New("invalid nonce length")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(password, salt, envelope.N, envelope.R, envelope.P)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plaintext, nil
}
