// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package metrics registers the Prometheus collectors exported on /metrics.

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendation pipeline:
  - recommendations_total{cluster,recommendation_type}
  - recommendation_duration_seconds
  - recommendation_validation_failures_total{field}
  - recommendation_errors_total{stage}
  - recommendation_cache_hits_total / recommendation_cache_misses_total

Artifacts:
  - food_table_items
  - model_info{version,features}

All collectors are registered on the default registry through promauto.
*/
package metrics
