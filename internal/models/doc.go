// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package models defines the data structures shared by the NutriProfile packages.

Key Components:

  - HealthRecord: one validated user submission (10 fields, fixed JSON keys)
  - Schema tables: RequiredKeys, AllowedValues, NumericRanges, FieldTypes
  - FoodItem: one row of the nutrient table
  - RecommendationResult: the /api/recommend response body
  - ErrorResponse: the {error, allowed} body returned on failures

The schema tables are the single source of truth for the wire contract. The
validator, the preprocessor vocabulary check and /api/schema all read them.

JSON keys intentionally use the training dataset's column names
(for example Blood_Pressure_Systolic) so that clients written against the
dataset need no mapping layer.
*/
package models
