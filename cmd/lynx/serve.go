package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/lynx/internal/api"
	"github.com/erazemk/lynx/internal/config"
	"github.com/erazemk/lynx/internal/db"
	"github.com/erazemk/lynx/internal/ids"
	"github.com/erazemk/lynx/internal/metrics"
	"github.com/erazemk/lynx/internal/pick"
	"github.com/erazemk/lynx/internal/store"
	"github.com/erazemk/lynx/internal/web"
)

// newHandler builds the store, session and routers on an in-memory
// database. The returned cleanup closes the database.
func newHandler(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	gen, err := ids.FromName(cfg.IDStrategy)
	if err != nil {
		return nil, nil, err
	}

	templates, err := config.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.OpenMemory()
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	cleanup := func() { database.Close() }

	st := store.New(database, gen, nil)
	if err := st.SeedTemplates(ctx, templates); err != nil {
		cleanup()
		return nil, nil, err
	}
	slog.Info("templates loaded", "count", len(templates), "source", templatesSource(cfg.TemplatesPath))

	session := pick.NewSession(st)
	m := metrics.New(st)

	apiRouter := api.NewRouter(st, session, m)
	webRouter, err := web.NewRouter(st, session, m, cfg.DisplayRefresh)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("setting up web router: %w", err)
	}

	// API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("/", webRouter)

	return api.LoggingMiddleware(m)(mux), cleanup, nil
}

// serve runs the HTTP server until ctx is cancelled or SIGINT/SIGTERM
// arrives, then shuts it down gracefully.
func serve(ctx context.Context, cfg *config.Config) error {
	handler, cleanup, err := newHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return err
	}

	slog.Info("server stopped, discarding orders")
	return nil
}

func templatesSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
