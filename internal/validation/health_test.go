// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package validation

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nutriprofile/internal/models"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"Age":                     45,
		"BMI":                     28.4,
		"Chronic_Disease":         "Heart Disease",
		"Blood_Pressure_Systolic": 135,
		"Blood_Sugar_Level":       160,
		"Daily_Steps":             8000,
		"Exercise_Frequency":      3,
		"Alcohol_Consumption":     "No",
		"Smoking_Habit":           "Yes",
		"Dietary_Habits":          "Vegetarian",
	}
}

func mustBody(t *testing.T, payload map[string]interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestParseHealthRecord_Valid(t *testing.T) {
	t.Parallel()

	rec, verr := ParseHealthRecord(mustBody(t, validPayload()))
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	want := &models.HealthRecord{
		Age: 45, BMI: 28.4, ChronicDisease: "Heart Disease", SystolicBP: 135,
		BloodSugar: 160, DailySteps: 8000, ExerciseFrequency: 3,
		AlcoholConsumption: "No", SmokingHabit: "Yes", DietaryHabits: "Vegetarian",
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("record = %+v, want %+v", rec, want)
	}
}

func TestParseHealthRecord_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value interface{}
	}{
		{"age min", "Age", 1},
		{"age max", "Age", 100},
		{"age whole float", "Age", 42.0},
		{"bmi min", "BMI", 10},
		{"bmi max", "BMI", 60.0},
		{"bp min", "Blood_Pressure_Systolic", 80},
		{"sugar max", "Blood_Sugar_Level", 400},
		{"steps zero", "Daily_Steps", 0},
		{"steps max", "Daily_Steps", 30000},
		{"exercise max", "Exercise_Frequency", 7},
		{"disease none", "Chronic_Disease", "None"},
		{"diet keto", "Dietary_Habits", "Keto"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validPayload()
			p[tt.field] = tt.value
			if _, verr := ParseHealthRecord(mustBody(t, p)); verr != nil {
				t.Errorf("%s=%v should be accepted, got %v", tt.field, tt.value, verr)
			}
		})
	}
}

func TestParseHealthRecord_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(p map[string]interface{})
		wantMsg   string
		wantField string
		wantAllow map[string]any
	}{
		{
			name:      "missing keys sorted",
			mutate:    func(p map[string]interface{}) { delete(p, "BMI"); delete(p, "Age") },
			wantMsg:   "Missing required keys: [Age, BMI]",
			wantField: "required_keys",
			wantAllow: map[string]any{"required_keys": models.RequiredKeys},
		},
		{
			name:      "null treated as missing",
			mutate:    func(p map[string]interface{}) { p["Smoking_Habit"] = nil },
			wantMsg:   "Missing required keys: [Smoking_Habit]",
			wantField: "required_keys",
			wantAllow: map[string]any{"required_keys": models.RequiredKeys},
		},
		{
			name:      "unexpected keys",
			mutate:    func(p map[string]interface{}) { p["Zip"] = "12345"; p["Height"] = 180 },
			wantMsg:   "Unexpected keys found: [Height, Zip]",
			wantField: "required_keys",
			wantAllow: map[string]any{"required_keys": models.RequiredKeys},
		},
		{
			name:      "numeric string",
			mutate:    func(p map[string]interface{}) { p["Age"] = "45" },
			wantMsg:   "'Age' must be a number",
			wantField: "Age",
			wantAllow: map[string]any{"Age": models.Range{Min: 1, Max: 100}},
		},
		{
			name:      "boolean number",
			mutate:    func(p map[string]interface{}) { p["Daily_Steps"] = true },
			wantMsg:   "'Daily_Steps' must be a number",
			wantField: "Daily_Steps",
			wantAllow: map[string]any{"Daily_Steps": models.Range{Min: 0, Max: 30000}},
		},
		{
			name:      "fractional integer",
			mutate:    func(p map[string]interface{}) { p["Exercise_Frequency"] = 2.5 },
			wantMsg:   "'Exercise_Frequency' must be an integer",
			wantField: "Exercise_Frequency",
			wantAllow: map[string]any{"Exercise_Frequency": models.Range{Min: 0, Max: 7}},
		},
		{
			name:      "age zero",
			mutate:    func(p map[string]interface{}) { p["Age"] = 0 },
			wantMsg:   "'Age' must be between 1 and 100",
			wantField: "Age",
			wantAllow: map[string]any{"Age": models.Range{Min: 1, Max: 100}},
		},
		{
			name:      "age 101",
			mutate:    func(p map[string]interface{}) { p["Age"] = 101 },
			wantMsg:   "'Age' must be between 1 and 100",
			wantField: "Age",
			wantAllow: map[string]any{"Age": models.Range{Min: 1, Max: 100}},
		},
		{
			name:      "huge age",
			mutate:    func(p map[string]interface{}) { p["Age"] = 1e20 },
			wantMsg:   "'Age' must be between 1 and 100",
			wantField: "Age",
			wantAllow: map[string]any{"Age": models.Range{Min: 1, Max: 100}},
		},
		{
			name:      "bmi 9.9",
			mutate:    func(p map[string]interface{}) { p["BMI"] = 9.9 },
			wantMsg:   "'BMI' must be between 10 and 60",
			wantField: "BMI",
			wantAllow: map[string]any{"BMI": models.Range{Min: 10, Max: 60}},
		},
		{
			name:      "systolic 79",
			mutate:    func(p map[string]interface{}) { p["Blood_Pressure_Systolic"] = 79 },
			wantMsg:   "'Blood_Pressure_Systolic' must be between 80 and 200",
			wantField: "Blood_Pressure_Systolic",
			wantAllow: map[string]any{"Blood_Pressure_Systolic": models.Range{Min: 80, Max: 200}},
		},
		{
			name:      "bad smoking value",
			mutate:    func(p map[string]interface{}) { p["Smoking_Habit"] = "Sometimes" },
			wantMsg:   "Invalid value for 'Smoking_Habit': 'Sometimes'",
			wantField: "Smoking_Habit",
			wantAllow: map[string]any{"Smoking_Habit": []string{"No", "Yes"}},
		},
		{
			name:      "categorical wrong type",
			mutate:    func(p map[string]interface{}) { p["Dietary_Habits"] = 3 },
			wantMsg:   "Invalid value for 'Dietary_Habits': '3'",
			wantField: "Dietary_Habits",
			wantAllow: map[string]any{"Dietary_Habits": []string{"Regular", "Vegetarian", "Vegan", "Keto"}},
		},
		{
			name: "first field in key order wins",
			mutate: func(p map[string]interface{}) {
				p["Daily_Steps"] = 40000
				p["Chronic_Disease"] = "Flu"
			},
			wantMsg:   "Invalid value for 'Chronic_Disease': 'Flu'",
			wantField: "Chronic_Disease",
			wantAllow: map[string]any{"Chronic_Disease": models.AllowedValues["Chronic_Disease"]},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validPayload()
			tt.mutate(p)

			rec, verr := ParseHealthRecord(mustBody(t, p))
			if verr == nil {
				t.Fatalf("expected validation error, got record %+v", rec)
			}
			if verr.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Error(), tt.wantMsg)
			}
			if verr.Field() != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field(), tt.wantField)
			}
			if !reflect.DeepEqual(verr.Allowed(), tt.wantAllow) {
				t.Errorf("allowed = %#v, want %#v", verr.Allowed(), tt.wantAllow)
			}
		})
	}
}

func TestParseHealthRecord_NoData(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "   ", "null", "{}", "[]", `"text"`, "42"} {
		body := body
		t.Run(body, func(t *testing.T) {
			t.Parallel()
			_, verr := ParseHealthRecord([]byte(body))
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if verr.Error() != MsgNoData {
				t.Errorf("message = %q, want %q", verr.Error(), MsgNoData)
			}
			if verr.Allowed() != nil {
				t.Errorf("no-data error should carry no allowed hint, got %v", verr.Allowed())
			}
		})
	}
}

func TestParseHealthRecord_Malformed(t *testing.T) {
	t.Parallel()

	full := string(mustBody(t, validPayload()))
	for _, body := range []string{"{not json", `{"Age": 30`, full + " trailing", full + full, "nul"} {
		body := body
		t.Run(body, func(t *testing.T) {
			t.Parallel()
			_, verr := ParseHealthRecord([]byte(body))
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if verr.Error() != MsgMalformed {
				t.Errorf("message = %q, want %q", verr.Error(), MsgMalformed)
			}
			if verr.Field() != "body" || verr.Tag() != "syntax" {
				t.Errorf("field/tag = %s/%s, want body/syntax", verr.Field(), verr.Tag())
			}
			if verr.Allowed() != nil {
				t.Errorf("malformed body should carry no allowed hint, got %v", verr.Allowed())
			}
		})
	}
}

func TestParseHealthRecord_OffendingValue(t *testing.T) {
	t.Parallel()

	_, verr := ParseHealthRecord([]byte(`{"Age": 30, "Weight": 80}`))
	if verr == nil {
		t.Fatal("expected validation error")
	}
	want := []string{"Alcohol_Consumption", "BMI", "Blood_Pressure_Systolic", "Blood_Sugar_Level",
		"Chronic_Disease", "Daily_Steps", "Dietary_Habits", "Exercise_Frequency", "Smoking_Habit"}
	if !reflect.DeepEqual(verr.Value(), want) {
		t.Errorf("Value() = %v, want %v", verr.Value(), want)
	}

	p := validPayload()
	p["Age"] = "45"
	_, verr = ParseHealthRecord(mustBody(t, p))
	if verr == nil || verr.Value() != `"45"` {
		t.Errorf("Value() = %v, want the raw JSON string", verr)
	}
}

func TestParseHealthRecord_Deterministic(t *testing.T) {
	t.Parallel()

	p := validPayload()
	p["Age"] = 0
	p["BMI"] = 70
	body := mustBody(t, p)

	first, _ := ParseHealthRecord(body)
	_, e1 := ParseHealthRecord(body)
	_, e2 := ParseHealthRecord(body)
	if first != nil || e1 == nil || e2 == nil {
		t.Fatal("expected repeated validation errors")
	}
	if e1.Error() != e2.Error() || e1.Field() != "Age" {
		t.Errorf("errors differ or wrong field: %q vs %q", e1.Error(), e2.Error())
	}
}

func TestValidateStruct_CollectsAllFields(t *testing.T) {
	t.Parallel()

	rec := &models.HealthRecord{
		Age: 0, BMI: 28, ChronicDisease: "None", SystolicBP: 300, BloodSugar: 100,
		DailySteps: 10, ExerciseFrequency: 1, AlcoholConsumption: "No",
		SmokingHabit: "No", DietaryHabits: "Paleo",
	}
	rve := ValidateStruct(rec)
	if rve == nil {
		t.Fatal("expected errors")
	}
	var fields []string
	for _, e := range rve.Errors() {
		fields = append(fields, e.Field())
	}
	want := []string{"Age", "Blood_Pressure_Systolic", "Dietary_Habits"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
	if rve.First().Field() != "Age" {
		t.Errorf("First() = %s, want Age", rve.First().Field())
	}
}
