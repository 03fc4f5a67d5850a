// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package validation

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// Messages shared with the HTTP layer and tests.
const (
	MsgNoData    = "No data provided. Please send JSON with user information."
	MsgMalformed = "Malformed JSON body"
)

// integers beyond this magnitude are clamped; the clamped value is still
// outside every declared range so the range rule reports it.
const intClamp = 1 << 30

// ParseHealthRecord validates body and returns the decoded record. A non-nil
// *ValidationError means the client must fix the payload.
func ParseHealthRecord(body []byte) (*models.HealthRecord, *ValidationError) {
	fields, verr := decodeObject(body)
	if verr != nil {
		return nil, verr
	}
	if verr := checkKeys(fields); verr != nil {
		return nil, verr
	}

	rec := &models.HealthRecord{}
	for _, key := range models.RequiredKeys {
		if verr := assign(rec, key, fields[key]); verr != nil {
			return nil, verr
		}
	}

	if rve := ValidateStruct(rec); rve != nil {
		return nil, rve.First()
	}
	return rec, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, *ValidationError) {
	noData := &ValidationError{field: "body", tag: "required", message: MsgNoData}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, noData
	}
	if !json.Valid(trimmed) {
		return nil, &ValidationError{field: "body", tag: "syntax", message: MsgMalformed}
	}
	if trimmed[0] != '{' {
		return nil, noData
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil || len(fields) == 0 {
		return nil, noData
	}
	return fields, nil
}

func checkKeys(fields map[string]json.RawMessage) *ValidationError {
	var missing []string
	for _, key := range models.RequiredKeys {
		raw, ok := fields[key]
		if !ok || isNull(raw) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &ValidationError{
			field:   "required_keys",
			tag:     "required",
			value:   missing,
			message: fmt.Sprintf("Missing required keys: %s", formatKeyList(missing)),
			allowed: map[string]any{"required_keys": models.RequiredKeys},
		}
	}

	var extra []string
	for key := range fields {
		if _, ok := models.FieldTypes[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return &ValidationError{
			field:   "required_keys",
			tag:     "unknown",
			value:   extra,
			message: fmt.Sprintf("Unexpected keys found: %s", formatKeyList(extra)),
			allowed: map[string]any{"required_keys": models.RequiredKeys},
		}
	}
	return nil
}

func assign(rec *models.HealthRecord, key string, raw json.RawMessage) *ValidationError {
	switch models.FieldTypes[key] {
	case models.KindCategorical:
		var s string
		if !isJSONString(raw) || json.Unmarshal(raw, &s) != nil {
			return &ValidationError{
				field:   key,
				tag:     "type",
				value:   string(raw),
				message: invalidValueMessage(key, string(bytes.TrimSpace(raw))),
				allowed: map[string]any{key: models.AllowedValues[key]},
			}
		}
		setCategorical(rec, key, s)
		return nil

	case models.KindInteger:
		v, ok := parseNumber(raw)
		if !ok {
			return notNumber(key, raw)
		}
		if v != math.Trunc(v) {
			return &ValidationError{
				field:   key,
				tag:     "type",
				value:   v,
				message: fmt.Sprintf("'%s' must be an integer", key),
				allowed: map[string]any{key: models.NumericRanges[key]},
			}
		}
		setInteger(rec, key, clamp(v))
		return nil

	default:
		v, ok := parseNumber(raw)
		if !ok {
			return notNumber(key, raw)
		}
		rec.BMI = v
		return nil
	}
}

// parseNumber accepts JSON numbers only; numeric strings and booleans are
// rejected.
func parseNumber(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func notNumber(key string, raw json.RawMessage) *ValidationError {
	return &ValidationError{
		field:   key,
		tag:     "type",
		value:   string(raw),
		message: fmt.Sprintf("'%s' must be a number", key),
		allowed: map[string]any{key: models.NumericRanges[key]},
	}
}

func clamp(v float64) int {
	switch {
	case v > intClamp:
		return intClamp
	case v < -intClamp:
		return -intClamp
	default:
		return int(v)
	}
}

func setInteger(rec *models.HealthRecord, key string, v int) {
	switch key {
	case models.FieldAge:
		rec.Age = v
	case models.FieldSystolicBP:
		rec.SystolicBP = v
	case models.FieldBloodSugar:
		rec.BloodSugar = v
	case models.FieldDailySteps:
		rec.DailySteps = v
	case models.FieldExerciseFrequency:
		rec.ExerciseFrequency = v
	}
}

func setCategorical(rec *models.HealthRecord, key, v string) {
	switch key {
	case models.FieldChronicDisease:
		rec.ChronicDisease = v
	case models.FieldAlcoholConsumption:
		rec.AlcoholConsumption = v
	case models.FieldSmokingHabit:
		rec.SmokingHabit = v
	case models.FieldDietaryHabits:
		rec.DietaryHabits = v
	}
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func formatKeyList(keys []string) string {
	return "[" + strings.Join(keys, ", ") + "]"
}
