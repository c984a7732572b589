// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package main is the entry point for the MovieVerse server.

MovieVerse serves content-based movie recommendations from a precomputed
title catalog and similarity matrix, enriching each recommended title with
metadata (poster, rating, director, trailer, reference link) looked up from
TMDB.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("movieverse")
	├── MetadataSupervisor ("metadata-layer")
	│   └── Metadata service (memo warm-up, memo statistics)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: combined artifact or split titles/similarity files
 4. Supervisor tree
 5. TMDB client with rate limiter and circuit breaker
 6. Metadata fetcher and recommendation engine
 7. HTTP server: chi router with middleware stack

# Startup

A missing or malformed catalog is fatal. A missing TMDB_API_KEY fails
configuration validation. Metadata provider outages are not fatal: affected
fields fall back to their defaults.

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, the metadata service logs
final memo statistics, and services that fail to stop are reported.

# Usage

	TMDB_API_KEY=... CATALOG_ARTIFACT_PATH=./data/catalog.json.gz ./movieverse

See the config package for all environment variables.
*/
package main
