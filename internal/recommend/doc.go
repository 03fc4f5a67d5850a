// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package recommend maps a validated HealthRecord to a health profile and a
ranked list of foods.

# Pipeline

	HealthRecord
	  -> Preprocessor.Transform   standardize numerics, one-hot categoricals
	  -> ClusterModel.Assign      nearest of 6 frozen K-Means centroids
	  -> ProfileFor               fixed profile name and diet type
	  -> Rank                     filter, score, stable sort, top K

The model and the food table are loaded once at startup (LoadModelArtifact,
LoadFoodTable) and are read-only afterwards, so an Engine can be shared by
any number of request goroutines. Any inconsistency in the artifacts is
reported as a *ConfigError before the HTTP server starts.

# Scoring

	score = Protein*2 - Fat*1.5 - Calories/50

Ties keep food-table order.

# Filtering

The food table may be pre-segmented by a Cluster column, a
Recommendation_Type column, both, or neither. FilterMode selects which one
narrows the candidates:

  - auto: cluster if present, else type if present, else none
  - cluster / type: required column must exist
  - none: rank the whole table

An empty candidate set yields an empty list, never a fallback to other foods.
*/
package recommend
