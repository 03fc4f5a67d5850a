// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// DefaultTopK is the number of foods returned per recommendation.
const DefaultTopK = 10

// FilterMode selects how the food table is narrowed before ranking.
type FilterMode string

const (
	FilterAuto    FilterMode = "auto"
	FilterCluster FilterMode = "cluster"
	FilterType    FilterMode = "type"
	FilterNone    FilterMode = "none"
)

// ParseFilterMode is case-insensitive; "" means auto.
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return FilterAuto, nil
	case FilterAuto, FilterCluster, FilterType, FilterNone:
		return m, nil
	default:
		return "", configErrorf("filter mode", "unknown mode %q", s)
	}
}

// Resolve turns auto into a concrete mode for table t and rejects forced
// modes whose column is absent.
func (m FilterMode) Resolve(t *FoodTable) (FilterMode, error) {
	switch m {
	case FilterAuto, "":
		switch {
		case t.HasClusterLabels():
			return FilterCluster, nil
		case t.HasTypeLabels():
			return FilterType, nil
		default:
			return FilterNone, nil
		}
	case FilterCluster:
		if !t.HasClusterLabels() {
			return "", configErrorf("filter mode", "mode cluster requires a Cluster column in the food table")
		}
		return m, nil
	case FilterType:
		if !t.HasTypeLabels() {
			return "", configErrorf("filter mode", "mode type requires a Recommendation_Type column in the food table")
		}
		return m, nil
	case FilterNone:
		return m, nil
	default:
		return "", configErrorf("filter mode", "unknown mode %q", string(m))
	}
}

// Score is the nutritional desirability of a food; higher is better.
func Score(f *models.FoodItem) float64 {
	return f.Protein*2 - f.Fat*1.5 - f.Calories/50
}

// matcher returns the keep predicate of a resolved mode for profile p.
func matcher(mode FilterMode, p Profile) func(*models.FoodItem) bool {
	switch mode {
	case FilterCluster:
		return func(f *models.FoodItem) bool { return f.HasClusterLabel && f.ClusterLabel == p.Cluster }
	case FilterType:
		label := p.Type.Label()
		return func(f *models.FoodItem) bool { return f.RecommendationType == label }
	default:
		return nil
	}
}

type scored struct {
	item  *models.FoodItem
	score float64
}

// Rank keeps the items accepted by keep (all when keep is nil), orders them by
// Score descending with ties in input order and returns at most k.
func Rank(items []models.FoodItem, keep func(*models.FoodItem) bool, k int) []models.FoodItem {
	if k <= 0 {
		return []models.FoodItem{}
	}
	candidates := make([]scored, 0, len(items))
	for i := range items {
		if keep == nil || keep(&items[i]) {
			candidates = append(candidates, scored{item: &items[i], score: Score(&items[i])})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out := make([]models.FoodItem, len(candidates))
	for i, c := range candidates {
		out[i] = *c.item
	}
	return out
}
