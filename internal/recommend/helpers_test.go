// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"strings"
	"testing"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// identityArtifact has zero means and unit stds, so feature values equal the
// raw inputs. Centroid k sits at Age = 10*(k+1) with every other coordinate
// zero, which makes the assigned cluster a function of Age alone.
func identityArtifact() *ModelArtifact {
	art := &ModelArtifact{Version: "test"}
	for _, name := range models.NumericFeatures() {
		art.NumericFeatures = append(art.NumericFeatures, NumericFeature{Name: name, Mean: 0, Std: 1})
	}
	width := len(art.NumericFeatures)
	for _, name := range models.CategoricalFeatures() {
		cats := append([]string(nil), models.AllowedValues[name]...)
		art.CategoricalFeatures = append(art.CategoricalFeatures, CategoricalFeature{Name: name, Categories: cats})
		width += len(cats)
	}
	for k := 0; k < NumClusters; k++ {
		c := make([]float64, width)
		c[0] = float64(10 * (k + 1))
		art.Centroids = append(art.Centroids, c)
	}
	return art
}

func sampleRecord(age int) *models.HealthRecord {
	return &models.HealthRecord{
		Age: age, BMI: 27.5, ChronicDisease: "Hypertension", SystolicBP: 140,
		BloodSugar: 150, DailySteps: 7000, ExerciseFrequency: 3,
		AlcoholConsumption: "No", SmokingHabit: "Yes", DietaryHabits: "Regular",
	}
}

// clusteredFoodsCSV has foods for clusters 0, 2 and 5 only.
const clusteredFoodsCSV = `Food,Measure,Grams,Calories,Protein,Fat,Sat.Fat,Fiber,Carbs,Category,Cluster
Tuna canned,3 oz.,85,170,25,7,3,0,0,Fish,2
Broccoli,2/3 cup,100,29,3,t,0,1.9,4,Vegetables,2
Cod dried,1 oz.,28,104,23,t,t,0,0,Fish,2
Shrimp canned,3 oz.,85,110,23,1,t,0,0,Fish,2.0
Oatmeal,1 cup,236,150,5,3,2,4.6,26,Grains,0
Almonds,1/2 cup,70,425,13,38,3,1.8,13,Nuts,5
Mystery,1,1,1,1,1,1,1,1,Other,unknown
`

func mustParseFoods(t *testing.T, csv string) *FoodTable {
	t.Helper()
	ft, err := ParseFoodTable(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseFoodTable: %v", err)
	}
	return ft
}

func foodNames(foods []models.FoodView) []string {
	out := make([]string, len(foods))
	for i, f := range foods {
		out[i] = f.Food
	}
	return out
}
