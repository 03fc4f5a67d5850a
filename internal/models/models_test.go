// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package models

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func TestSchemaTablesCoverEveryKey(t *testing.T) {
	t.Parallel()

	if len(RequiredKeys) != 10 {
		t.Fatalf("expected 10 required keys, got %d", len(RequiredKeys))
	}
	for _, k := range RequiredKeys {
		kind, ok := FieldTypes[k]
		if !ok {
			t.Errorf("FieldTypes missing %s", k)
			continue
		}
		switch kind {
		case KindCategorical:
			if _, ok := AllowedValues[k]; !ok {
				t.Errorf("AllowedValues missing categorical %s", k)
			}
		default:
			if _, ok := NumericRanges[k]; !ok {
				t.Errorf("NumericRanges missing numeric %s", k)
			}
		}
	}
}

func TestFeatureOrder(t *testing.T) {
	t.Parallel()

	wantNumeric := []string{FieldAge, FieldBMI, FieldSystolicBP, FieldBloodSugar, FieldDailySteps, FieldExerciseFrequency}
	if got := NumericFeatures(); !reflect.DeepEqual(got, wantNumeric) {
		t.Errorf("NumericFeatures() = %v, want %v", got, wantNumeric)
	}
	wantCat := []string{FieldChronicDisease, FieldAlcoholConsumption, FieldSmokingHabit, FieldDietaryHabits}
	if got := CategoricalFeatures(); !reflect.DeepEqual(got, wantCat) {
		t.Errorf("CategoricalFeatures() = %v, want %v", got, wantCat)
	}
}

func TestHealthRecordAccessors(t *testing.T) {
	t.Parallel()

	h := HealthRecord{Age: 40, BMI: 27.5, SystolicBP: 130, ChronicDisease: "Diabetes", DietaryHabits: "Keto"}
	if v, ok := h.Numeric(FieldBMI); !ok || v != 27.5 {
		t.Errorf("Numeric(BMI) = %v, %v", v, ok)
	}
	if v, ok := h.Numeric(FieldSystolicBP); !ok || v != 130 {
		t.Errorf("Numeric(SystolicBP) = %v, %v", v, ok)
	}
	if _, ok := h.Numeric(FieldDietaryHabits); ok {
		t.Error("Numeric should reject a categorical field")
	}
	if v, ok := h.Categorical(FieldChronicDisease); !ok || v != "Diabetes" {
		t.Errorf("Categorical(Chronic_Disease) = %v, %v", v, ok)
	}
}

func TestRecommendationResultJSONKeys(t *testing.T) {
	t.Parallel()

	item := FoodItem{Name: "Broccoli", Category: "Vegetables", Protein: 2.8, Fat: 0.4, Carbs: 6.6, Calories: 34, Grams: 100}
	res := RecommendationResult{
		ProfileName:        "Cluster 2",
		RecommendationType: "Low-Fat Foods",
		RecommendedFoods:   []FoodView{item.View()},
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"profile_name", "recommendation_type", "recommended_foods"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %s in %s", key, data)
		}
	}
	foods := decoded["recommended_foods"].([]interface{})
	food := foods[0].(map[string]interface{})
	if len(food) != 6 {
		t.Errorf("food projection should have 6 fields, got %v", food)
	}
	if _, ok := food["Grams"]; ok {
		t.Error("Grams must not be exposed")
	}
}

func TestErrorResponseOmitsEmptyAllowed(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ErrorResponse{Error: "boom"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"error":"boom"}` {
		t.Errorf("got %s", data)
	}
}
