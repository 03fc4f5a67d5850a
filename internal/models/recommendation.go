// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package models

// FoodItem is one row of the nutrient table. Missing or unparsable numeric
// values are stored as 0.
type FoodItem struct {
	Name     string
	Measure  string
	Category string
	Grams    float64
	Calories float64
	Protein  float64
	Fat      float64
	SatFat   float64
	Fiber    float64
	Carbs    float64

	// ClusterLabel is set when the table is pre-segmented by cluster.
	ClusterLabel    int
	HasClusterLabel bool

	// RecommendationType is set when the table carries a diet-type column.
	RecommendationType string
}

// FoodView is the projection of a FoodItem returned to clients.
type FoodView struct {
	Food     string  `json:"Food"`
	Category string  `json:"Category"`
	Protein  float64 `json:"Protein"`
	Fat      float64 `json:"Fat"`
	Carbs    float64 `json:"Carbs"`
	Calories float64 `json:"Calories"`
}

// View projects the item onto the response fields.
func (f *FoodItem) View() FoodView {
	return FoodView{
		Food:     f.Name,
		Category: f.Category,
		Protein:  f.Protein,
		Fat:      f.Fat,
		Carbs:    f.Carbs,
		Calories: f.Calories,
	}
}

// RecommendationResult is the /api/recommend response body.
type RecommendationResult struct {
	ProfileName        string     `json:"profile_name"`
	RecommendationType string     `json:"recommendation_type"`
	RecommendedFoods   []FoodView `json:"recommended_foods"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Allowed map[string]any `json:"allowed,omitempty"`
}

// StatusResponse is returned by GET /.
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	OK bool `json:"ok"`
}
