// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package metrics defines the Prometheus collectors for MovieVerse.

All collectors are registered on the default registry via promauto and exposed
at /metrics through promhttp.

# Available Metrics

TMDB:
  - tmdb_request_duration_seconds{endpoint}
  - tmdb_requests_total{endpoint, outcome}

Metadata memo:
  - metadata_memo_hits_total{memo}, metadata_memo_misses_total{memo}
  - metadata_memo_entries{memo}

Recommendations:
  - recommendation_duration_seconds
  - recommendations_total{outcome}

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Catalog:
  - catalog_titles

# Example Queries

Metadata memo hit ratio:

	sum(rate(metadata_memo_hits_total[5m])) /
	(sum(rate(metadata_memo_hits_total[5m])) + sum(rate(metadata_memo_misses_total[5m])))

TMDB p95 latency by endpoint:

	histogram_quantile(0.95, sum by (le, endpoint) (rate(tmdb_request_duration_seconds_bucket[5m])))
*/
package metrics
