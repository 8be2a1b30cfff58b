// Command api serves the hoopstats reports over HTTP.
//
// Usage:
//
//	hoopstats-api
//	API_PORT=8080 hoopstats-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/courtside/hoopstats/internal/api"
	"github.com/courtside/hoopstats/internal/cache"
	"github.com/courtside/hoopstats/internal/config"
	"github.com/courtside/hoopstats/internal/provider/bdl"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg := config.Load()

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := bdl.NewClient(bdl.Config{
		BaseURL:           cfg.BDLBaseURL,
		APIKey:            cfg.BDLAPIKey,
		RequestsPerMinute: cfg.BDLRequestsPerMinute,
		Timeout:           cfg.BDLTimeout,
	}, logger)
	handler := bdl.NewNBAHandler(client, logger)

	appCache := cache.New(ctx, cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	router := api.NewRouter(handler, appCache, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // full-season pagination is slow under the upstream rate limit
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting hoopstats API", "addr", addr, "upstream", cfg.BDLBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
