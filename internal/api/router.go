// Package api wires the HTTP routes.
package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pocketvault/walletcore/internal/handler"
	"github.com/pocketvault/walletcore/wallet"
)

// SetupRouter sets up the router with all wallet endpoints.
func SetupRouter(w *wallet.Wallet) http.Handler {
	walletHandler := handler.NewWalletHandler(w)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Vault lifecycle
	mux.HandleFunc("/wallet/status", walletHandler.Status)
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/unlock", walletHandler.Unlock)
	mux.HandleFunc("/wallet/lock", walletHandler.Lock)
	mux.HandleFunc("/wallet/pin/change", walletHandler.ChangePin)
	mux.HandleFunc("/wallet/reset", walletHandler.Reset)

	// Accounts and networks
	mux.HandleFunc("/wallet/accounts", walletHandler.Accounts)
	mux.HandleFunc("/wallet/accounts/active", walletHandler.SetActiveAccount)
	mux.HandleFunc("/wallet/chain", walletHandler.ActiveChain)
	mux.HandleFunc("/wallet/networks/custom-rpc", walletHandler.CustomRPC)

	// Chain operations
	mux.HandleFunc("/wallet/balance", walletHandler.Balance)
	mux.HandleFunc("/wallet/tokens", walletHandler.TokenBalances)
	mux.HandleFunc("/wallet/send", walletHandler.Send)
	mux.HandleFunc("/wallet/history", walletHandler.History)
	mux.HandleFunc("/wallet/receive", walletHandler.Receive)

	return mux
}
