package main

import (
	"fmt"
	"net/http"
	"os"

	"trade-entry-go/internal/config"
	"trade-entry-go/internal/database"
	"trade-entry-go/internal/entry"
	"trade-entry-go/internal/ledger"
	"trade-entry-go/internal/logger"
	"trade-entry-go/internal/upstream"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	policy := entry.Policy{AutoDeriveExpiry: cfg.Entry.AutoDeriveExpiry}

	// Pick the submission sink
	var transport entry.Transport
	var store *ledger.Store
	switch cfg.Entry.Sink {
	case "local":
		db, err := database.NewDatabase(cfg.Database.DSN)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		log.Info("Database connection successful and schema migrated.")
		store = ledger.NewStore(db, log.Named("ledger"))
		transport = store
	case "http":
		transport = upstream.NewClient(&cfg.Upstream, log.Named("upstream"))
		log.Info("Using upstream save-trade endpoint", zap.String("base_url", cfg.Upstream.BaseURL))
	default:
		log.Fatal("Unknown entry sink", zap.String("sink", cfg.Entry.Sink))
	}

	// Setup HTTP server
	mux := http.NewServeMux()

	apiHandler := NewAPIHandler(log, transport, policy, store)

	// API endpoints
	mux.HandleFunc("/api/sessions", apiHandler.CreateSessionHandler)
	mux.HandleFunc("/api/sessions/edit", apiHandler.EditHandler)
	mux.HandleFunc("/api/sessions/submit", apiHandler.SubmitHandler)
	mux.HandleFunc("/api/trades", apiHandler.TradesHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting web server", zap.String("address", addr))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("Web server failed", zap.Error(err))
	}
}
