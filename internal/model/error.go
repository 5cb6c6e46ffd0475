package model

// Error codes carried in ErrorResponse.Code
const (
	CodeBadRequest     = "bad_request"
	CodeValidation     = "validation"
	CodeNotFound       = "not_found"
	CodeNoActiveWallet = "no_active_wallet"
	CodeNetwork        = "network"
	CodeTransaction    = "transaction"
	CodeStorage        = "storage"
	CodeInternal       = "internal"
)

// ErrorResponse is the body of every failed wallet API call
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
