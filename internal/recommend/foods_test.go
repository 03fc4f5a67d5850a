// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseNutrient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"3.5", 3.5},
		{" 2 ", 2},
		{"t", 0},
		{"T", 0},
		{"1,000", 1000},
		{"", 0},
		{"n/a", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-4", -4},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := parseNutrient(tt.in); got != tt.want {
				t.Errorf("parseNutrient(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFoodTable_Clustered(t *testing.T) {
	t.Parallel()

	ft := mustParseFoods(t, clusteredFoodsCSV)
	if ft.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", ft.Len())
	}
	if !ft.HasClusterLabels() || ft.HasTypeLabels() {
		t.Errorf("columns: cluster=%v type=%v", ft.HasClusterLabels(), ft.HasTypeLabels())
	}

	items := ft.Items()
	broccoli := items[1]
	if broccoli.Fat != 0 || broccoli.Calories != 29 || broccoli.Fiber != 1.9 {
		t.Errorf("broccoli = %+v", broccoli)
	}
	if !items[3].HasClusterLabel || items[3].ClusterLabel != 2 {
		t.Errorf("cluster 2.0 should parse as 2, got %+v", items[3])
	}
	if items[6].HasClusterLabel {
		t.Errorf("invalid cluster label should be ignored, got %+v", items[6])
	}
}

func TestParseFoodTable_HeaderVariants(t *testing.T) {
	t.Parallel()

	csv := "\ufeff food , CALORIES,Protein,Fat,Category,RecommendationType\n" +
		"Skim milk,360,36,t,Dairy,low-fat foods\n" +
		"\"Cheese, cheddar\",70,4,6,Dairy,Low-Carb\n" +
		",10,1,1,Blank,Low-Carb\n" +
		"Cake,\"1,200\",10,40,Desserts,Dessert\n"
	ft := mustParseFoods(t, csv)
	if ft.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (blank name skipped)", ft.Len())
	}
	items := ft.Items()
	if items[0].RecommendationType != "Low-Fat Foods" {
		t.Errorf("type label = %q, want normalized Low-Fat Foods", items[0].RecommendationType)
	}
	if items[1].Name != "Cheese, cheddar" {
		t.Errorf("quoted name = %q", items[1].Name)
	}
	if items[2].Calories != 1200 || items[2].RecommendationType != "Dessert" {
		t.Errorf("cake = %+v", items[2])
	}
	if items[0].Carbs != 0 {
		t.Errorf("absent Carbs column should read as 0, got %v", items[0].Carbs)
	}
}

func TestParseFoodTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"no food column", "Name,Calories,Protein,Fat\nx,1,1,1\n"},
		{"no protein column", "Food,Calories,Fat\nx,1,1\n"},
		{"bad quoting", "Food,Calories,Protein,Fat\n\"x,1,1,1\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFoodTable(strings.NewReader(tt.csv))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
		})
	}
}

func TestLoadFoodTable_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFoodTable(filepath.Join(t.TempDir(), "absent.csv"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
