// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package services provides suture.Service wrappers for long-running components.

Each wrapper implements suture.Service and fmt.Stringer, translating a
component's own lifecycle into suture's context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe to Serve
  - Startup failures (for example a port already in use) are returned so
    the supervisor restarts the server with backoff

Cache Janitor (CacheJanitorService):
  - Periodically evicts expired entries from the recommendation result cache
  - Logs how many entries were removed at debug level
*/
package services
