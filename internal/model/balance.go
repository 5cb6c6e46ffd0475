package model

// BalanceResponse represents response for GET /wallets/balance.
// Balance is empty when it is unknown.
type BalanceResponse struct {
	WalletID string `json:"walletId"`
	Address  string `json:"address"`
	Balance  string `json:"balance,omitempty"`
	Display  string `json:"display,omitempty"`
	Symbol   string `json:"symbol"`
	Known    bool   `json:"known"`
}
