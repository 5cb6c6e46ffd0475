package model

// CreateRequest represents request for POST /wallets/create
type CreateRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ImportRequest represents request for POST /wallets/import
type ImportRequest struct {
	Name       string `json:"name"`
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password"`
}

// GenerateResponse represents response for POST /wallets/create and /wallets/import
type GenerateResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Wallet  WalletView `json:"wallet"`
}
