// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// Package cache provides a bounded, TTL-aware LRU used to memoize
// recommendation results keyed by the canonical form of a HealthRecord.
//
// All operations are O(1) and safe for concurrent use. Expired entries are
// dropped lazily on access and in bulk by CleanupExpired.
package cache
