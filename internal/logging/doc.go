// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// Package logging wraps zerolog as the single structured logger for NutriProfile.
//
// The global logger starts with JSON output at info level and is reconfigured
// once from main through Init. Request handlers log through Ctx so that every
// line carries the request_id and correlation_id placed on the context by the
// HTTP middleware.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Str("model", path).Msg("Model artifact loaded")
//	logging.Ctx(r.Context()).Info().Int("cluster", c).Msg("Predicted cluster")
//
// # slog bridge
//
// The supervisor tree expects an *slog.Logger. NewSlogLogger returns one whose
// records are written through the same zerolog instance.
//
// # Environment
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
package logging
