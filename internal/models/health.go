// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package models

// Wire names of the HealthRecord fields.
const (
	FieldAge                = "Age"
	FieldBMI                = "BMI"
	FieldChronicDisease     = "Chronic_Disease"
	FieldSystolicBP         = "Blood_Pressure_Systolic"
	FieldBloodSugar         = "Blood_Sugar_Level"
	FieldDailySteps         = "Daily_Steps"
	FieldExerciseFrequency  = "Exercise_Frequency"
	FieldAlcoholConsumption = "Alcohol_Consumption"
	FieldSmokingHabit       = "Smoking_Habit"
	FieldDietaryHabits      = "Dietary_Habits"
)

// HealthRecord is one user submission after validation. The validate tags
// must agree with NumericRanges and AllowedValues.
type HealthRecord struct {
	Age                int     `json:"Age" validate:"gte=1,lte=100"`
	BMI                float64 `json:"BMI" validate:"gte=10,lte=60"`
	ChronicDisease     string  `json:"Chronic_Disease" validate:"oneof='None' 'Diabetes' 'Heart Disease' 'Hypertension' 'Obesity'"`
	SystolicBP         int     `json:"Blood_Pressure_Systolic" validate:"gte=80,lte=200"`
	BloodSugar         int     `json:"Blood_Sugar_Level" validate:"gte=50,lte=400"`
	DailySteps         int     `json:"Daily_Steps" validate:"gte=0,lte=30000"`
	ExerciseFrequency  int     `json:"Exercise_Frequency" validate:"gte=0,lte=7"`
	AlcoholConsumption string  `json:"Alcohol_Consumption" validate:"oneof=No Yes"`
	SmokingHabit       string  `json:"Smoking_Habit" validate:"oneof=No Yes"`
	DietaryHabits      string  `json:"Dietary_Habits" validate:"oneof=Regular Vegetarian Vegan Keto"`
}

// Numeric returns the value of a numeric field by wire name.
func (h *HealthRecord) Numeric(field string) (float64, bool) {
	switch field {
	case FieldAge:
		return float64(h.Age), true
	case FieldBMI:
		return h.BMI, true
	case FieldSystolicBP:
		return float64(h.SystolicBP), true
	case FieldBloodSugar:
		return float64(h.BloodSugar), true
	case FieldDailySteps:
		return float64(h.DailySteps), true
	case FieldExerciseFrequency:
		return float64(h.ExerciseFrequency), true
	}
	return 0, false
}

// Categorical returns the value of a categorical field by wire name.
func (h *HealthRecord) Categorical(field string) (string, bool) {
	switch field {
	case FieldChronicDisease:
		return h.ChronicDisease, true
	case FieldAlcoholConsumption:
		return h.AlcoholConsumption, true
	case FieldSmokingHabit:
		return h.SmokingHabit, true
	case FieldDietaryHabits:
		return h.DietaryHabits, true
	}
	return "", false
}
