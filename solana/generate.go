package solana

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

const (
	Network = "solana"

	privateKeyLen = 64
)

// Keypair is freshly generated key material.
// Secret is the base58 private key, so it can be imported back as-is.
type Keypair struct {
	Address string
	Secret  []byte
}

// GenerateKeypair generates a new Solana keypair.
// Caller should clear Secret after use.
func GenerateKeypair() *Keypair {
	wallet := solana.NewWallet()
	defer clear(wallet.PrivateKey)

	return &Keypair{
		Address: wallet.PublicKey().String(),
		Secret:  []byte(wallet.PrivateKey.String()),
	}
}

// DeriveAddress derives the public address for imported secret material.
// A base58-encoded 64-byte Solana private key yields its real public key;
// any other input yields the SHA-256 digest of the input read as a public key.
// The result is deterministic and always a well-formed base58 address.
func DeriveAddress(secret string) string {
	if pub, err := publicKeyFromPrivate(secret); err == nil {
		return pub.String()
	}
	digest := sha256.Sum256([]byte(secret))
	return solana.PublicKeyFromBytes(digest[:]).String()
}

// publicKeyFromPrivate parses a base58 private key and checks that its
// public half matches its seed
func publicKeyFromPrivate(secret string) (solana.PublicKey, error) {
	key, err := solana.PrivateKeyFromBase58(secret)
	if err != nil {
		return solana.PublicKey{}, err
	}
	defer clear(key)

	if len(key) != privateKeyLen {
		return solana.PublicKey{}, fmt.Errorf("invalid private key length: expected %d bytes", privateKeyLen)
	}
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	defer clear(derived)
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return solana.PublicKey{}, errors.New("private key does not match its public half")
	}
	return key.PublicKey(), nil
}

// IsValidAddress reports whether address parses as a Solana public key
func IsValidAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// AddressQR renders address as a base64 PNG QR code
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
