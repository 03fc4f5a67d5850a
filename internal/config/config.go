// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds browser-facing access settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ArtifactsConfig points at the files produced by the offline training job.
type ArtifactsConfig struct {
	// ModelPath is the JSON artifact holding preprocessing parameters and centroids.
	ModelPath string `koanf:"model_path"`

	// FoodTablePath is the nutrient CSV.
	FoodTablePath string `koanf:"food_table_path"`
}

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	// FilterMode selects how the food table is narrowed before ranking:
	// auto, cluster, type or none.
	FilterMode string `koanf:"filter_mode"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheSize    int           `koanf:"cache_size"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load is the entry point used by main.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
