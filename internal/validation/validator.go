// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/nutriprofile/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError describes one rejected input.
type ValidationError struct {
	field   string
	tag     string
	value   interface{}
	message string
	allowed map[string]any
}

// Field is the JSON key that failed, or "body" / "required_keys" for
// whole-document failures.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag is the failed rule (required, unknown, type, oneof, gte, lte).
func (e *ValidationError) Tag() string {
	return e.tag
}

// Value is the offending input, if any.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Allowed carries the hint returned to clients, or nil.
func (e *ValidationError) Allowed() map[string]any {
	return e.allowed
}

func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects every field error found by ValidateStruct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the field errors in struct order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// First returns the first field error in struct order.
func (ve *RequestValidationError) First() *ValidationError {
	if len(ve.errors) == 0 {
		return &ValidationError{field: "unknown", tag: "unknown", message: "validation failed"}
	}
	return &ve.errors[0]
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.errors))
	for i := range ve.errors {
		msgs[i] = ve.errors[i].message
	}
	return strings.Join(msgs, "; ")
}

// GetValidator returns the shared validator. Field errors are reported under
// the struct's json tag names.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the struct's validate tags. It returns nil on success.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = translateError(fe)
	}
	return &RequestValidationError{errors: out}
}

func translateError(fe validator.FieldError) ValidationError {
	field := fe.Field()
	ve := ValidationError{field: field, tag: fe.Tag(), value: fe.Value()}

	switch fe.Tag() {
	case "oneof":
		ve.message = invalidValueMessage(field, fe.Value())
		if allowed, ok := models.AllowedValues[field]; ok {
			ve.allowed = map[string]any{field: allowed}
		} else {
			ve.allowed = map[string]any{field: strings.Fields(fe.Param())}
		}
	case "gte", "lte", "gt", "lt", "min", "max":
		if r, ok := models.NumericRanges[field]; ok {
			ve.message = fmt.Sprintf("'%s' must be between %s and %s", field, formatNumber(r.Min), formatNumber(r.Max))
			ve.allowed = map[string]any{field: r}
		} else {
			ve.message = fmt.Sprintf("'%s' failed %s=%s", field, fe.Tag(), fe.Param())
		}
	default:
		ve.message = fmt.Sprintf("'%s' failed %s validation", field, fe.Tag())
	}
	return ve
}

func invalidValueMessage(field string, value interface{}) string {
	return fmt.Sprintf("Invalid value for '%s': '%v'", field, value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
