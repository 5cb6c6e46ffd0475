package crypto

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/AlexZinkM/tsdc-wallet/internal/model"

	"github.com/stretchr/testify/require"
)

const testN = 1 << 10

func TestSealOpen(t *testing.T) {
	s, err := NewSealer(testN)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("top secret key"), []byte("hunter22"))
	require.NoError(t, err)
	require.NotContains(t, sealed, "top secret key")

	secret, err := s.Open(sealed, []byte("hunter22"))
	require.NoError(t, err)
	require.Equal(t, "top secret key", string(secret))
}

func TestOpenWrongPassword(t *testing.T) {
	s, err := NewSealer(testN)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("key"), []byte("right-one"))
	require.NoError(t, err)

	_, err = s.Open(sealed, []byte("wrong-one"))
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestSealUsesFreshSaltAndNonce(t *testing.T) {
	s, err := NewSealer(testN)
	require.NoError(t, err)

	a, err := s.Seal([]byte("key"), []byte("password"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("key"), []byte("password"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestOpenReadsCostFromEnvelope(t *testing.T) {
	low, err := NewSealer(testN)
	require.NoError(t, err)
	sealed, err := low.Seal([]byte("key"), []byte("password"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	var envelope model.ProtectedSecret
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Equal(t, testN, envelope.N)
	require.Equal(t, "scrypt", envelope.KDF)

	other, err := NewSealer(testN * 2)
	require.NoError(t, err)
	secret, err := other.Open(sealed, []byte("password"))
	require.NoError(t, err)
	require.Equal(t, "key", string(secret))
}

func TestOpenRejectsGarbage(t *testing.T) {
	s, err := NewSealer(testN)
	require.NoError(t, err)

	_, err = s.Open("not base64 !!", []byte("password"))
	require.Error(t, err)

	_, err = s.Open(base64.StdEncoding.EncodeToString([]byte(`{"kdf":"md5"}`)), []byte("password"))
	require.Error(t, err)
}

func TestNewSealerRejectsBadCost(t *testing.T) {
	for _, n := range []int{0, 1, 3, 1000, MaxScryptN * 2} {
		_, err := NewSealer(n)
		require.Error(t, err, "n=%d", n)
	}
}

func TestOpenRejectsExcessiveCost(t *testing.T) {
	s, err := NewSealer(testN)
	require.NoError(t, err)
	sealed, err := s.Seal([]byte("key"), []byte("password"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	var envelope model.ProtectedSecret
	require.NoError(t, json.Unmarshal(raw, &envelope))

	tests := []struct {
		name    string
		n, r, p int
	}{
		{name: "huge N", n: 1 << 30, r: 8, p: 1},
		{name: "N not a power of two", n: 1000, r: 8, p: 1},
		{name: "zero r", n: testN, r: 0, p: 1},
		{name: "huge r", n: testN, r: 1 << 20, p: 1},
		{name: "huge p", n: testN, r: 8, p: 1 << 20},
		{name: "max N with large r", n: MaxScryptN, r: 32, p: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := envelope
			tampered.N, tampered.R, tampered.P = tt.n, tt.r, tt.p
			data, err := json.Marshal(tampered)
			require.NoError(t, err)

			_, err = s.Open(base64.StdEncoding.EncodeToString(data), []byte("password"))
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrInvalidPassword)
		})
	}
}
