// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import "github.com/tomtom215/nutriprofile/internal/models"

// MockResult is the fixed payload served by /api/test so front-end work can
// proceed without trained artifacts.
func MockResult() *models.RecommendationResult {
	veg := func(name string, protein, fat, carbs, calories float64) models.FoodView {
		return models.FoodView{Food: name, Category: "Vegetables", Protein: protein, Fat: fat, Carbs: carbs, Calories: calories}
	}
	return &models.RecommendationResult{
		ProfileName:        "Cluster 2",
		RecommendationType: LowFat.Label(),
		RecommendedFoods: []models.FoodView{
			veg("Broccoli", 2.8, 0.4, 6.6, 34),
			veg("Spinach", 2.9, 0.4, 3.6, 23),
			veg("Cucumber", 0.7, 0.1, 3.6, 16),
			veg("Lettuce", 1.4, 0.2, 2.9, 15),
			veg("Celery", 0.7, 0.2, 3.0, 16),
			veg("Tomato", 0.9, 0.2, 3.9, 18),
			veg("Bell Pepper", 1.0, 0.3, 4.6, 20),
			veg("Zucchini", 1.2, 0.2, 3.4, 17),
			veg("Cauliflower", 1.9, 0.3, 5.0, 25),
			veg("Asparagus", 2.2, 0.2, 3.9, 20),
		},
	}
}
