package model

// SendRequest represents request for POST /wallets/send
type SendRequest struct {
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
}

// SendResponse represents response for POST /wallets/send
type SendResponse struct {
	TxID    string `json:"txId"`
	Balance string `json:"balance,omitempty"`
}
