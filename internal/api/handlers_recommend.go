// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/tomtom215/nutriprofile/internal/logging"
	"github.com/tomtom215/nutriprofile/internal/metrics"
	"github.com/tomtom215/nutriprofile/internal/models"
	"github.com/tomtom215/nutriprofile/internal/recommend"
	"github.com/tomtom215/nutriprofile/internal/validation"
)

// MsgBodyTooLarge is returned with HTTP 413.
const MsgBodyTooLarge = "Request body too large"

// Recommend classifies a health record and returns ranked foods.
//
// @Summary Recommend foods for a health profile
// @Description Validates the ten health fields, assigns the record to one of six
// @Description health-profile clusters and returns up to ten foods ranked by
// @Description Protein*2 - Fat*1.5 - Calories/50.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param record body models.HealthRecord true "Health metrics"
// @Success 200 {object} models.RecommendationResult
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 413 {object} models.ErrorResponse "Body too large"
// @Failure 429 {object} models.ErrorResponse "Rate limited"
// @Failure 500 {object} models.ErrorResponse "Configuration or internal failure"
// @Router /api/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondJSON(w, http.StatusRequestEntityTooLarge, &models.ErrorResponse{Error: MsgBodyTooLarge})
			return
		}
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{Error: validation.MsgNoData})
		return
	}

	rec, verr := validation.ParseHealthRecord(body)
	if verr != nil {
		metrics.ValidationFailures.WithLabelValues(verr.Field()).Inc()
		logging.Ctx(r.Context()).Debug().
			Str("field", verr.Field()).
			Str("rule", verr.Tag()).
			Interface("value", verr.Value()).
			Msg("Rejected health record")
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
			Error:   verr.Error(),
			Allowed: verr.Allowed(),
		})
		return
	}

	result, err := h.engine.Recommend(r.Context(), rec)
	if err != nil {
		var cfgErr *recommend.ConfigError
		if errors.As(err, &cfgErr) {
			metrics.RecommendationErrors.WithLabelValues("config").Inc()
		}
		respondError(w, r, http.StatusInternalServerError,
			"An error occurred during recommendation: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
