// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - Request ID: UUID-based request tracking with logging context
  - Access Log: one structured log line per request
  - Prometheus Metrics: request count, latency and in-flight instrumentation
  - Performance Monitor: rolling latency percentiles per route

All middleware has the func(http.Handler) http.Handler shape and plugs
directly into chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)

Endpoint labels use the matched chi route pattern (for example
/api/v1/recommendations) rather than the raw path, so query strings and
path parameters do not inflate metric cardinality.

Thread Safety:

All middleware components are safe for concurrent use. The performance
monitor guards its window with a sync.RWMutex.
*/
package middleware
