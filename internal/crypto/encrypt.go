package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlexZinkM/tsdc-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for local wallet
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still
	// fitting in the per-app memory limits of phones.
	DefaultScryptN = 1 << 18
	// MaxScryptN caps the cost of both new and stored secrets (~1GB RAM at r=8)
	MaxScryptN   = 1 << 20
	scryptR      = 8
	scryptP      = 1
	maxScryptR   = 32
	maxScryptP   = 16
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	kdfScrypt = "scrypt"
)

// Sealer protects wallet secrets with a password-derived AES-256-GCM key.
type Sealer struct {
	n int
}

// NewSealer returns a Sealer using scrypt cost n for new secrets.
// n must be a power of two in (1, MaxScryptN].
func NewSealer(n int) (*Sealer, error) {
	if !validCost(n) {
		return nil, fmt.Errorf("scrypt N must be a power of two greater than 1 and at most %d", MaxScryptN)
	}
	return &Sealer{n: n}, nil
}

func validCost(n int) bool {
	return n > 1 && n <= MaxScryptN && n&(n-1) == 0
}

// checkParams rejects stored cost parameters that would exhaust memory.
// scrypt needs about 128*N*r bytes.
func checkParams(n, r, p int) error {
	if !validCost(n) {
		return fmt.Errorf("unsupported scrypt N %d", n)
	}
	if r < 1 || r > maxScryptR || p < 1 || p > maxScryptP {
		return fmt.Errorf("unsupported scrypt r=%d p=%d", r, p)
	}
	if n*r > MaxScryptN*scryptR {
		return fmt.Errorf("scrypt cost N=%d r=%d is too high", n, r)
	}
	return nil
}

// Seal encrypts secret with password and returns the opaque stored form.
// password must be []byte for security (caller should zero it after use)
func (s *Sealer) Seal(secret, password []byte) (string, error) {
	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, s.n, scryptR, scryptP)
	if err != nil {
		return "", err
	}

	ciphertext := aesGCM.Seal(nil, nonce, secret, nil)

	envelope := model.ProtectedSecret{
		KDF:        kdfScrypt,
		N:          s.n,
		R:          scryptR,
		P:          scryptP,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("failed to marshal protected secret: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// newGCM derives the key from password and wraps it in AES-GCM
func newGCM(password, salt []byte, n, r, p int) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, n, r, p, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
