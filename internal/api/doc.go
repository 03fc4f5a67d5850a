// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package api provides the HTTP surface of the recommendation service.

Routes are registered on a chi router (see Router.SetupChi):

	GET      /                 liveness: {"status":"running"}
	GET      /api/health       {"ok": true}
	GET      /api/schema       input contract (required keys, allowed values, field types)
	GET|POST /api/test         fixed mock recommendation for front-end work
	POST     /api/recommend    classify a health record and rank foods
	GET      /metrics          Prometheus exposition
	GET      /swagger/*        Swagger UI

Middleware Stack:

Every request passes through request-ID propagation, chi's RealIP and
Recoverer, and the go-chi/cors allow-list. Routes under /api are also
instrumented by middleware.PrometheusMetrics; /api/recommend is additionally
rate limited per client IP with go-chi/httprate.

Error Responses:

All errors are JSON objects of the form {"error": "...", "allowed": {...}}.
The allowed member is present only for validation failures that can tell
the client which values are accepted. Validation failures map to 400,
rate limiting to 429, and everything else to 500.
*/
package api
