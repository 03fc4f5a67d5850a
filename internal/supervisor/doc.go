// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

/*
Package supervisor provides process supervision using suture v4.

The supervisor tree organizes long-running services into two layers for
failure isolation:

	RootSupervisor ("nutriprofile")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (if the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the janitor never interrupts request serving, and the HTTP server
is restarted with backoff if ListenAndServe fails.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewCacheJanitorService(engine, time.Minute, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

Supervisor events (service start, failure, backoff) are logged through
sutureslog, which writes to the zerolog-backed slog handler from the logging
package.
*/
package supervisor
