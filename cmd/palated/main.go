// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Command palated hosts the analytics engine behind an HTTP API.
//
// The engine itself is pure; this binary owns config loading, logging,
// the HTTP listener, and graceful shutdown.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/achievement"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/api"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/config"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/logging"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/recommend"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH or standard locations)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger := logging.Logger()
		bootLogger.Fatal().Err(err).Msg("loading configuration")
	}

	logging.Init(cfg.Log)
	logger := logging.Logger()

	// Production runs want varied tie-breaking; a configured seed pins
	// the ranking for reproducible environments.
	recCfg := cfg.Recommend
	if recCfg.Seed == 0 {
		recCfg.Seed = time.Now().UnixNano()
	}
	recommender, err := recommend.NewEngine(recCfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("building recommendation engine")
	}

	detector := achievement.NewDetector(achievement.DefaultConfig())

	server := api.NewServer(detector, recommender, api.Options{
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("server starting")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
