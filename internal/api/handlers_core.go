// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package api

import (
	"net/http"

	"github.com/tomtom215/nutriprofile/internal/models"
	"github.com/tomtom215/nutriprofile/internal/recommend"
)

// Index reports that the server is running.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.StatusResponse{Status: "running"})
}

// Health handles health check requests
//
// @Summary Health check
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{OK: true})
}

// Schema returns the static input contract for POST /api/recommend.
//
// @Summary Input schema
// @Description Required keys, allowed categorical values and per-field JSON types
// @Tags Core
// @Produce json
// @Success 200 {object} models.Schema
// @Router /api/schema [get]
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	schema := models.InputSchema()
	respondJSON(w, http.StatusOK, &schema)
}

// Test returns a fixed recommendation without touching the model.
//
// @Summary Mock recommendation
// @Description Static payload for front-end development. Accepts GET or POST and ignores any body.
// @Tags Core
// @Produce json
// @Success 200 {object} models.RecommendationResult
// @Router /api/test [get]
// @Router /api/test [post]
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, recommend.MockResult())
}

// notFound and methodNotAllowed keep chi's fallbacks in the JSON error shape.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, &models.ErrorResponse{Error: "Not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed, &models.ErrorResponse{Error: "Method not allowed"})
}
