// Package main is the entry point for the Polywise server.
// It loads configuration, opens the JSON document store, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"polywise/internal/cache"
	"polywise/internal/config"
	"polywise/internal/handlers"
	"polywise/internal/router"
	"polywise/internal/storage"
	"polywise/internal/store"
	"polywise/internal/translate"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"dataDir", cfg.DataDir,
	)

	// Open the JSON-file document store.
	s := store.Open(cfg.DataDir)
	articleStore := store.NewArticleStore(s)
	topicStore := store.NewTopicStore(s)

	// Local uploads directory, created on first start.
	files, err := storage.NewLocal(cfg.UploadsDir)
	if err != nil {
		slog.Error("failed to initialize uploads storage", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey for the share-page cache (optional — the server
	// runs without it, rendering every share page on demand).
	var pageCache *cache.PageCache
	if cfg.ValkeyAddr() != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	} else {
		slog.Warn("valkey not configured — share pages rendered on every request")
	}

	if cfg.GoogleAPIKey == "" {
		slog.Warn("GOOGLE_API_KEY not set — translation proxy disabled")
	}
	translateClient := translate.New(cfg.GoogleAPIKey, cfg.TranslateBaseURL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Articles:   handlers.NewArticles(articleStore, pageCache),
		Topics:     handlers.NewTopics(topicStore, pageCache),
		Uploads:    handlers.NewUploads(files),
		Translate:  handlers.NewTranslate(translateClient, cfg.GoogleAPIKey != ""),
		Share:      handlers.NewShare(articleStore, pageCache, cfg.SiteDir),
		AdminToken: cfg.AdminToken,
		SiteDir:    cfg.SiteDir,
		UploadsDir: files.Dir(),
	})

	// WriteTimeout must accommodate the translation proxy, which waits on
	// the upstream API.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
