// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/nutriprofile/docs" // swagger spec for /swagger/*
	"github.com/tomtom215/nutriprofile/internal/config"
	"github.com/tomtom215/nutriprofile/internal/logging"
	"github.com/tomtom215/nutriprofile/internal/supervisor"
	"github.com/tomtom215/nutriprofile/internal/supervisor/services"
)

// cacheJanitorInterval is how often expired cached results are evicted.
const cacheJanitorInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("model_path", cfg.Artifacts.ModelPath).
		Str("food_table_path", cfg.Artifacts.FoodTablePath).
		Str("filter_mode", cfg.Recommend.FilterMode).
		Msg("Starting NutriProfile")

	engine, err := initEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Recommend.CacheEnabled {
		tree.AddMaintenanceService(services.NewCacheJanitorService(engine, cacheJanitorInterval, logging.Logger()))
	}

	server := newServer(cfg, engine)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
