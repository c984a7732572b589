// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package supervisor provides process supervision for MovieVerse using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("movieverse")
	├── MetadataSupervisor ("metadata-layer")
	│   └── MetadataService (memo warm-up and statistics)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing warm-up never takes the HTTP listener down with it, and a listener
that fails to bind is restarted with backoff instead of ending the process.

Supervisor events (start, stop, failure, backoff) are written through
sutureslog to a slog.Logger. Use logging.NewSlogLogger to route them into the
process zerolog logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddMetadataService(services.NewMetadataService(fetcher, titles, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := tree.ServeBackground(ctx)

See package services for the service wrappers.
*/
package supervisor
