// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/nutriprofile/internal/api"
	"github.com/tomtom215/nutriprofile/internal/config"
	"github.com/tomtom215/nutriprofile/internal/logging"
	"github.com/tomtom215/nutriprofile/internal/recommend"
)

// initEngine loads both artifacts and builds the recommendation engine.
// Every failure here is an operator error and aborts startup.
func initEngine(cfg *config.Config) (*recommend.Engine, error) {
	art, err := recommend.LoadModelArtifact(cfg.Artifacts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model artifact: %w", err)
	}
	foods, err := recommend.LoadFoodTable(cfg.Artifacts.FoodTablePath)
	if err != nil {
		return nil, fmt.Errorf("loading food table: %w", err)
	}

	engine, err := recommend.NewEngine(&recommend.Config{
		FilterMode:   recommend.FilterMode(cfg.Recommend.FilterMode),
		CacheEnabled: cfg.Recommend.CacheEnabled,
		CacheTTL:     cfg.Recommend.CacheTTL,
		CacheSize:    cfg.Recommend.CacheSize,
	}, art, foods, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("building recommendation engine: %w", err)
	}
	return engine, nil
}

// newServer wires the router and returns an unstarted *http.Server.
func newServer(cfg *config.Config, engine api.Recommender) *http.Server {
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(api.NewHandler(engine), chiMW)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
