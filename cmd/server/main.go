// Wallet core server: vault, accounts and multi-chain operations behind an
// HTTP API with Swagger UI at /swagger/.
package main

import (
	"net/http"
	"os"

	"github.com/pocketvault/walletcore/internal/api"
	"github.com/pocketvault/walletcore/internal/config"
	"github.com/pocketvault/walletcore/internal/log"
	"github.com/pocketvault/walletcore/internal/store"
	"github.com/pocketvault/walletcore/wallet"

	_ "github.com/pocketvault/walletcore/docs"
)

// @title        Wallet Core API
// @version      1.0
// @description  Key management and multi-chain transaction API
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		log.Logger.Fatal().Err(err).Msg("load config")
	}
	cfg := config.Get()
	log.Init(cfg.LogLevel, cfg.LogJSON)

	fileStore, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("open data dir")
	}

	w := wallet.New(fileStore, cfg.APIBaseURL, cfg.RPCTimeout())
	router := api.SetupRouter(w)

	log.Logger.Info().Str("port", cfg.Port).Msg("wallet core listening")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
