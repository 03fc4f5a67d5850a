// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CachePruner evicts expired cache entries and reports how many it removed.
// *recommend.Engine satisfies it.
type CachePruner interface {
	PruneCache() int
}

// CacheJanitorService prunes the result cache on a fixed interval so expired
// entries do not linger until capacity pressure evicts them.
type CacheJanitorService struct {
	pruner   CachePruner
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor. Non-positive intervals become 1m.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewCacheJanitorService(pruner CachePruner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		pruner:   pruner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.pruner.PruneCache(); n > 0 {
				s.logger.Debug().Int("evicted", n).Msg("Pruned expired recommendation cache entries")
			}
		}
	}
}

// String implements fmt.Stringer.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
