// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/nutriprofile/internal/config"
	"github.com/tomtom215/nutriprofile/internal/recommend"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 5000, Timeout: 30 * time.Second, ShutdownTimeout: 10 * time.Second},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"http://localhost:5500"},
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
		},
		Artifacts: config.ArtifactsConfig{
			ModelPath:     "../../artifacts/model.json",
			FoodTablePath: "../../artifacts/nutrients.csv",
		},
		Recommend: config.RecommendConfig{
			FilterMode:   "auto",
			CacheEnabled: true,
			CacheTTL:     time.Minute,
			CacheSize:    100,
		},
	}
}

func TestInitEngine(t *testing.T) {
	engine, err := initEngine(testConfig())
	if err != nil {
		t.Fatalf("initEngine: %v", err)
	}
	if engine.FilterMode() != recommend.FilterType {
		t.Errorf("FilterMode() = %s, want type", engine.FilterMode())
	}
	if engine.ModelVersion() == "" {
		t.Error("model version should be set")
	}
}

func TestInitEngine_Failures(t *testing.T) {
	dir := t.TempDir()
	badCSV := filepath.Join(dir, "foods.csv")
	if err := os.WriteFile(badCSV, []byte("Name,Calories\nx,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{"missing model", func(c *config.Config) { c.Artifacts.ModelPath = filepath.Join(dir, "absent.json") }, "loading model artifact"},
		{"bad food table", func(c *config.Config) { c.Artifacts.FoodTablePath = badCSV }, "loading food table"},
		{"cluster mode without column", func(c *config.Config) { c.Recommend.FilterMode = "cluster" }, "building recommendation engine"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			_, err := initEngine(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("err = %v, want %q", err, tt.wantMsg)
			}
			var cfgErr *recommend.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *recommend.ConfigError in chain, got %v", err)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	engine, err := initEngine(testConfig())
	if err != nil {
		t.Fatalf("initEngine: %v", err)
	}
	server := newServer(testConfig(), engine)

	if server.Addr != "127.0.0.1:5000" {
		t.Errorf("Addr = %q", server.Addr)
	}
	if server.ReadTimeout != 30*time.Second || server.WriteTimeout != 30*time.Second {
		t.Errorf("timeouts = %v/%v", server.ReadTimeout, server.WriteTimeout)
	}

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("GET /api/health = %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/api/recommend") {
		t.Errorf("GET /swagger/doc.json = %d", rec.Code)
	}
}
