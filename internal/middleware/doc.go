// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: X-Request-ID propagation into the response header, the
    request context and the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by the matched chi route pattern

Both are plain net/http middleware and are adapted onto chi with r.Use:

	r.Use(middleware.RequestID)
	r.With(middleware.Chi(middleware.PrometheusMetrics)).Post("/api/recommend", h.Recommend)

Route patterns are used as the endpoint label instead of raw URL paths so
that unmatched or probing requests cannot explode metric cardinality.
*/
package middleware
