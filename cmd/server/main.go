package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"aromadose/internal/config"
	"aromadose/internal/db"
	applog "aromadose/internal/log"
	"aromadose/internal/server"
)

func main() {
	// A missing .env file is fine, the environment wins anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if cfg.Logging.Level != "" {
		if err := applog.SetLevel(cfg.Logging.Level); err != nil {
			log.Fatalf("invalid log level: %v", err)
		}
	}
	if cfg.Logging.Format != "" {
		if err := applog.SetFormat(cfg.Logging.Format); err != nil {
			log.Fatalf("invalid log format: %v", err)
		}
	}

	ctx := context.Background()

	if !cfg.Database.Disabled {
		if _, err := db.Configure(cfg.Database); err != nil {
			log.Fatalf("database initialization failed: %v", err)
		}
		applog.Info(ctx, "database ready", "url_set", cfg.Database.URL != "", "path", cfg.Database.Path)
	} else {
		applog.Info(ctx, "persistence disabled, calculations will not be recorded")
	}

	srv := server.New(server.Config{
		Addr:       cfg.Server.Addr,
		Session:    cfg.Session,
		APIKeyHash: cfg.Auth.APIKeyHash,
		Database:   db.Get(),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server encountered an error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
