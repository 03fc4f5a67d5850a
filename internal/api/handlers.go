// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package api

import (
	"context"
	"time"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// Recommender is the pipeline behind POST /api/recommend.
// *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, rec *models.HealthRecord) (*models.RecommendationResult, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_core.go: liveness, health, schema and mock endpoints
//   - handlers_recommend.go: the recommendation endpoint
type Handler struct {
	engine       Recommender
	maxBodyBytes int64
	startTime    time.Time
}

// DefaultMaxBodyBytes bounds POST /api/recommend request bodies.
const DefaultMaxBodyBytes = 64 << 10

// NewHandler creates a handler serving recommendations from engine.
//
// Example:
//
//	engine, _ := recommend.NewEngine(cfg, art, foods, logging.WithComponent("recommend"))
//	handler := api.NewHandler(engine)
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(engine Recommender) *Handler {
	return &Handler{
		engine:       engine,
		maxBodyBytes: DefaultMaxBodyBytes,
		startTime:    time.Now(),
	}
}
