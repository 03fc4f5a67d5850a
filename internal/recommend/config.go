// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"fmt"
	"time"
)

// Config tunes the Engine.
type Config struct {
	// FilterMode narrows the food table before ranking.
	FilterMode FilterMode

	// CacheEnabled memoizes results per distinct HealthRecord.
	CacheEnabled bool
	CacheTTL     time.Duration
	CacheSize    int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		FilterMode:   FilterAuto,
		CacheEnabled: true,
		CacheTTL:     10 * time.Minute,
		CacheSize:    10000,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := ParseFilterMode(string(c.FilterMode)); err != nil {
		return err
	}
	if c.CacheEnabled && (c.CacheSize < 1 || c.CacheTTL <= 0) {
		return fmt.Errorf("cache requires positive size and ttl, got size=%d ttl=%v", c.CacheSize, c.CacheTTL)
	}
	return nil
}
