// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// Package validation turns a raw /api/recommend body into a models.HealthRecord.
//
// Checks run in a fixed order and the first violation is reported:
//
//  1. body present and a non-empty JSON object
//  2. no missing (or null) keys
//  3. no unexpected keys
//  4. JSON type of every field, in models.RequiredKeys order
//  5. range and enumeration rules, in models.RequiredKeys order
//
// Step 5 is delegated to go-playground/validator using the tags declared on
// models.HealthRecord. The singleton validator reports struct fields under
// their JSON names.
package validation
