// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package api provides the HTTP JSON API for MovieVerse.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for catalog, recommendation and health endpoints
  - ChiMiddleware: CORS and inbound rate limiting from the chi ecosystem
  - Response formatting: every response uses the models.APIResponse envelope

Endpoints:

	GET /api/v1/titles                        catalog titles in catalog order
	GET /api/v1/titles/random                 one uniformly random title
	GET /api/v1/recommendations?title=...     top 5 similar titles with metadata
	GET /api/v1/recommendations/random        recommendations for a random title
	GET /api/v1/health/live                   liveness probe
	GET /api/v1/health/ready                  readiness probe
	GET /api/v1/health/performance            per-route latency statistics
	GET /metrics                              Prometheus exposition

Error Handling:

Errors use a stable machine-readable code:

	{
	  "status": "error",
	  "data": null,
	  "error": {"code": "TITLE_NOT_FOUND", "message": "Title is not in the catalog"},
	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "request_id": "..."}
	}

Metadata failures never surface as errors here. A recommendation whose TMDB
lookup failed still returns 200 with placeholder fields in its record.
*/
package api
