// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package config

import (
	"fmt"
	"strings"
)

// FilterModes lists the accepted recommend.filter_mode values.
var FilterModes = []string{"auto", "cluster", "type", "none"}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" && len(c.Security.CORSOrigins) > 1 {
			return fmt.Errorf("CORS_ORIGINS cannot mix '*' with explicit origins")
		}
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if strings.TrimSpace(c.Artifacts.ModelPath) == "" {
		return fmt.Errorf("MODEL_PATH is required")
	}
	if strings.TrimSpace(c.Artifacts.FoodTablePath) == "" {
		return fmt.Errorf("FOOD_TABLE_PATH is required")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	mode := strings.ToLower(c.Recommend.FilterMode)
	valid := false
	for _, m := range FilterModes {
		if mode == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("RECOMMEND_FILTER_MODE must be one of %s, got %q",
			strings.Join(FilterModes, ", "), c.Recommend.FilterMode)
	}
	if c.Recommend.CacheEnabled {
		if c.Recommend.CacheSize < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1 when caching is enabled")
		}
		if c.Recommend.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a recognised level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
