// Command dashboard is the HTTP collaborator described in spec.md §6: it
// exposes the wallet-key core's two endpoints over gorilla/mux, backed by
// a minimal JSON-RPC client to the daemon for the newaddress lookup.
package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rowbotony/croncoin-walletcore/internal/config"
	"github.com/rowbotony/croncoin-walletcore/internal/httpapi"
	"github.com/rowbotony/croncoin-walletcore/internal/rpcclient"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	rpc := rpcclient.New(cfg)
	handlers := httpapi.New(rpc, cfg.HRP, cfg.DerivationPath, logger)

	r := mux.NewRouter()
	r.Use(httpapi.Logging(logger))
	r.HandleFunc("/api/wallet/generate", handlers.Generate).Methods(http.MethodPost)
	r.HandleFunc("/api/wallet/newaddress", handlers.NewAddress).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.DashboardPort)
	logger.Info("dashboard listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("dashboard server stopped", zap.Error(err))
	}
}
