package api

import (
	"net/http"

	"github.com/AlexZinkM/tsdc-wallet/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallets", walletHandler.List)
	mux.HandleFunc("/wallets/create", walletHandler.Create)
	mux.HandleFunc("/wallets/import", walletHandler.Import)
	mux.HandleFunc("/wallets/activate", walletHandler.Activate)
	mux.HandleFunc("/wallets/balance", walletHandler.Balance)
	mux.HandleFunc("/wallets/send", walletHandler.Send)
	mux.HandleFunc("/wallets/receive", walletHandler.Receive)

	// Token endpoints
	mux.HandleFunc("/token", walletHandler.Token)

	return mux
}
