// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// @title NutriProfile API
// @version 1.0
// @description Health-profile clustering and food recommendation service.
// @description
// @description POST ten health metrics to /api/recommend to receive the assigned
// @description profile, its recommendation type and up to ten ranked foods.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {"error": "'Age' must be between 1 and 100", "allowed": {"Age": {"min": 1, "max": 100}}}
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description /api/recommend allows 60 requests per minute per IP address by default.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/nutriprofile/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Liveness, health, schema and mock endpoints
//
// @tag.name Recommendations
// @tag.description Health-profile classification and food ranking
package main
