package model

// WalletRecord is a stored wallet. Field names follow the persisted format.
type WalletRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PublicAddress   string `json:"publicKey"`
	EncryptedSecret string `json:"encryptedPrivateKey"`
}

// WalletView is a wallet record as exposed over the API (no secret material)
type WalletView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PublicAddress string `json:"address"`
	Active        bool   `json:"active"`
}

// ProtectedSecret is the envelope behind WalletRecord.EncryptedSecret
type ProtectedSecret struct {
	KDF        string `json:"kdf"`
	N          int    `json:"n"`
	R          int    `json:"r"`
	P          int    `json:"p"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletsResponse represents response for GET /wallets
type WalletsResponse struct {
	ActiveID string       `json:"activeId,omitempty"`
	Wallets  []WalletView `json:"wallets"`
}

// ActivateRequest represents request for POST /wallets/activate
type ActivateRequest struct {
	ID string `json:"id"`
}

// ReceiveResponse represents response for GET /wallets/receive
type ReceiveResponse struct {
	Address string `json:"address"`
	QR      string `json:"QR"`
}
