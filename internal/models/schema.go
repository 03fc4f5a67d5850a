// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package models

// Field kinds used by the validator and reported by /api/schema.
const (
	KindInteger     = "number (integer)"
	KindFloat       = "number (float)"
	KindCategorical = "string (categorical)"
)

// RequiredKeys lists every HealthRecord field in canonical order. Validation
// reports the first failing field in this order.
var RequiredKeys = []string{
	FieldAge,
	FieldBMI,
	FieldChronicDisease,
	FieldSystolicBP,
	FieldBloodSugar,
	FieldDailySteps,
	FieldExerciseFrequency,
	FieldAlcoholConsumption,
	FieldSmokingHabit,
	FieldDietaryHabits,
}

// AllowedValues holds the enumeration for each categorical field.
var AllowedValues = map[string][]string{
	FieldChronicDisease:     {"None", "Diabetes", "Heart Disease", "Hypertension", "Obesity"},
	FieldAlcoholConsumption: {"No", "Yes"},
	FieldSmokingHabit:       {"No", "Yes"},
	FieldDietaryHabits:      {"Regular", "Vegetarian", "Vegan", "Keto"},
}

// Range is an inclusive numeric bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NumericRanges holds the accepted interval for each numeric field.
var NumericRanges = map[string]Range{
	FieldAge:               {Min: 1, Max: 100},
	FieldBMI:               {Min: 10, Max: 60},
	FieldSystolicBP:        {Min: 80, Max: 200},
	FieldBloodSugar:        {Min: 50, Max: 400},
	FieldDailySteps:        {Min: 0, Max: 30000},
	FieldExerciseFrequency: {Min: 0, Max: 7},
}

// FieldTypes maps each field to its kind.
var FieldTypes = map[string]string{
	FieldAge:                KindInteger,
	FieldBMI:                KindFloat,
	FieldChronicDisease:     KindCategorical,
	FieldSystolicBP:         KindInteger,
	FieldBloodSugar:         KindInteger,
	FieldDailySteps:         KindInteger,
	FieldExerciseFrequency:  KindInteger,
	FieldAlcoholConsumption: KindCategorical,
	FieldSmokingHabit:       KindCategorical,
	FieldDietaryHabits:      KindCategorical,
}

// NumericFeatures lists the numeric fields in canonical order.
func NumericFeatures() []string {
	out := make([]string, 0, len(NumericRanges))
	for _, k := range RequiredKeys {
		if FieldTypes[k] != KindCategorical {
			out = append(out, k)
		}
	}
	return out
}

// CategoricalFeatures lists the categorical fields in canonical order.
func CategoricalFeatures() []string {
	out := make([]string, 0, len(AllowedValues))
	for _, k := range RequiredKeys {
		if FieldTypes[k] == KindCategorical {
			out = append(out, k)
		}
	}
	return out
}

// Schema is the /api/schema response body.
type Schema struct {
	RequiredKeys  []string            `json:"required_keys"`
	AllowedValues map[string][]string `json:"allowed_values"`
	FieldTypes    map[string]string   `json:"field_types"`
}

// InputSchema returns the static input contract.
func InputSchema() Schema {
	return Schema{
		RequiredKeys:  RequiredKeys,
		AllowedValues: AllowedValues,
		FieldTypes:    FieldTypes,
	}
}
