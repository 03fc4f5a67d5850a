// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/nutriprofile/internal/models"
	"github.com/tomtom215/nutriprofile/internal/recommend"
)

const validBody = `{
	"Age": 45, "BMI": 31.2, "Chronic_Disease": "Diabetes",
	"Blood_Pressure_Systolic": 150, "Blood_Sugar_Level": 210,
	"Daily_Steps": 4000, "Exercise_Frequency": 1,
	"Alcohol_Consumption": "No", "Smoking_Habit": "No", "Dietary_Habits": "Regular"
}`

var (
	engineOnce sync.Once
	engine     *recommend.Engine
	engineErr  error
)

// shippedEngine builds one engine from the repository artifacts and shares
// it between tests; the engine is safe for concurrent use.
func shippedEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	engineOnce.Do(func() {
		art, err := recommend.LoadModelArtifact("../../artifacts/model.json")
		if err != nil {
			engineErr = err
			return
		}
		foods, err := recommend.LoadFoodTable("../../artifacts/nutrients.csv")
		if err != nil {
			engineErr = err
			return
		}
		engine, engineErr = recommend.NewEngine(nil, art, foods, zerolog.Nop())
	})
	if engineErr != nil {
		t.Fatalf("building engine: %v", engineErr)
	}
	return engine
}

// stubRecommender returns a canned result or error.
type stubRecommender struct {
	result *models.RecommendationResult
	err    error
	calls  int
	mu     sync.Mutex
}

func (s *stubRecommender) Recommend(_ context.Context, _ *models.HealthRecord) (*models.RecommendationResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.result, s.err
}

func newTestServer(t *testing.T, rec Recommender, cfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(rec), NewChiMiddleware(cfg)).SetupChi()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}
