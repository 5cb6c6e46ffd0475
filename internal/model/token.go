package model

// TokenInfo describes the wallet's token for the dashboard
type TokenInfo struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Network  string `json:"network"`
	Mint     string `json:"mint"`
	Type     string `json:"type"`
	Decimals int    `json:"decimals"`
	Website  string `json:"website"`
	Price    string `json:"price,omitempty"`
	Currency string `json:"currency,omitempty"`
}
