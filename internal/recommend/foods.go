// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// Food table column names. Lookup ignores case and surrounding space.
const (
	colFood     = "food"
	colMeasure  = "measure"
	colGrams    = "grams"
	colCalories = "calories"
	colProtein  = "protein"
	colFat      = "fat"
	colSatFat   = "sat.fat"
	colFiber    = "fiber"
	colCarbs    = "carbs"
	colCategory = "category"
	colCluster  = "cluster"
	colType     = "recommendation_type"
)

var requiredFoodColumns = []string{colFood, colCalories, colProtein, colFat}

// FoodTable is the immutable, in-memory nutrient table.
type FoodTable struct {
	items      []models.FoodItem
	hasCluster bool
	hasType    bool
}

// NewFoodTable wraps items. hasCluster and hasType declare which optional
// segmentation columns the source carried.
func NewFoodTable(items []models.FoodItem, hasCluster, hasType bool) *FoodTable {
	return &FoodTable{
		items:      append([]models.FoodItem(nil), items...),
		hasCluster: hasCluster,
		hasType:    hasType,
	}
}

// LoadFoodTable reads the CSV food table at path.
func LoadFoodTable(path string) (*FoodTable, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &ConfigError{Component: "food table", Err: err}
	}
	defer f.Close()

	t, err := ParseFoodTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseFoodTable reads a CSV food table with a header row. Numeric cells go
// through parseNutrient; rows with an empty Food name are skipped.
func ParseFoodTable(r io.Reader) (*FoodTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, configErrorf("food table", "read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if name == "recommendationtype" {
			name = colType
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, c := range requiredFoodColumns {
		if _, ok := cols[c]; !ok {
			return nil, configErrorf("food table", "missing required column %q", c)
		}
	}
	_, hasCluster := cols[colCluster]
	_, hasType := cols[colType]

	cell := func(rec []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var items []models.FoodItem
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, configErrorf("food table", "line %d: %w", line, err)
		}
		name := cell(rec, colFood)
		if name == "" {
			continue
		}
		item := models.FoodItem{
			Name:     name,
			Measure:  cell(rec, colMeasure),
			Category: cell(rec, colCategory),
			Grams:    parseNutrient(cell(rec, colGrams)),
			Calories: parseNutrient(cell(rec, colCalories)),
			Protein:  parseNutrient(cell(rec, colProtein)),
			Fat:      parseNutrient(cell(rec, colFat)),
			SatFat:   parseNutrient(cell(rec, colSatFat)),
			Fiber:    parseNutrient(cell(rec, colFiber)),
			Carbs:    parseNutrient(cell(rec, colCarbs)),
		}
		if hasCluster {
			if c, ok := parseClusterLabel(cell(rec, colCluster)); ok {
				item.ClusterLabel = c
				item.HasClusterLabel = true
			}
		}
		if hasType {
			raw := cell(rec, colType)
			if t, ok := ParseRecommendationType(raw); ok {
				item.RecommendationType = t.Label()
			} else {
				item.RecommendationType = raw
			}
		}
		items = append(items, item)
	}

	return &FoodTable{items: items, hasCluster: hasCluster, hasType: hasType}, nil
}

// parseNutrient converts a raw cell to a float: "t" (trace) is 0, thousands
// separators are dropped and anything unparsable or non-finite is 0.
func parseNutrient(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "t") {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseClusterLabel accepts "3" and "3.0".
func parseClusterLabel(s string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != math.Trunc(v) || v < 0 || v >= NumClusters {
		return 0, false
	}
	return int(v), true
}

// Len returns the number of rows.
func (t *FoodTable) Len() int {
	return len(t.items)
}

// Items returns the rows in table order. Callers must not modify them.
func (t *FoodTable) Items() []models.FoodItem {
	return t.items
}

// HasClusterLabels reports whether the source carried a Cluster column.
func (t *FoodTable) HasClusterLabels() bool {
	return t.hasCluster
}

// HasTypeLabels reports whether the source carried a Recommendation_Type column.
func (t *FoodTable) HasTypeLabels() bool {
	return t.hasType
}
