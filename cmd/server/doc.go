// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package main is the entry point for the NutriProfile server.

NutriProfile assigns a user's health metrics to one of six health-profile
clusters using a frozen K-Means model and recommends foods for that profile
from a static nutrient table.

# Application Architecture

	RootSupervisor ("nutriprofile")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache janitor (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml, environment
 2. Logging: zerolog with JSON/console output modes
 3. Artifacts: model JSON and nutrient CSV, validated against each other
 4. Recommendation engine
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server

Any artifact problem aborts startup before the server listens.

# Configuration

	HTTP_PORT=5000                  listen port
	MODEL_PATH=artifacts/model.json model artifact
	FOOD_TABLE_PATH=artifacts/nutrients.csv
	RECOMMEND_FILTER_MODE=auto      auto, cluster, type or none
	CORS_ORIGINS=http://localhost:5500
	LOG_LEVEL=info LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to the configured shutdown
timeout (10s by default).
*/
package main
