package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/courier-im/courier/internal/config"
	"github.com/courier-im/courier/internal/handlers"
	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/metrics"
	"github.com/courier-im/courier/internal/middleware"
	"github.com/courier-im/courier/internal/store/sqlstore"
)

var addr = flag.String("addr", "", "http service address (overrides ADDR)")

func main() {
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	ctx := context.Background()

	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}

	driver, dsn := cfg.DriverAndDSN()
	store, err := sqlstore.New(driver, dsn)
	if err != nil {
		logger.Error(ctx, "opening store", "driver", driver, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	authHandler := &handlers.AuthHandler{Store: store, Log: logger}
	contactHandler := &handlers.ContactHandler{Store: store, Log: logger}
	messageHandler := &handlers.MessageHandler{Store: store, Log: logger}
	healthHandler := &handlers.HealthHandler{Store: store, Log: logger}

	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())

	// API Endpoints
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/search", authHandler.SearchUsers).Methods("GET")
	r.HandleFunc("/add_contact", contactHandler.AddContact).Methods("POST")
	r.HandleFunc("/contacts", contactHandler.ListContacts).Methods("GET")
	r.HandleFunc("/send", messageHandler.Send).Methods("POST")
	r.HandleFunc("/messages", messageHandler.Fetch).Methods("GET")
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	logger.Info(ctx, "starting server", "addr", cfg.Addr, "driver", driver)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error(ctx, "server exited", "err", err)
		os.Exit(1)
	}
}
