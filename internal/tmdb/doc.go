// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package tmdb is a small client for the four TMDB v3 endpoints MovieVerse uses:

	GET /search/movie?query=...      SearchMovie
	GET /movie/{id}/credits          Credits
	GET /movie/{id}/videos           Videos
	GET /movie/{id}                  Details

Every request carries the api_key query parameter, waits on an outbound token
bucket (golang.org/x/time/rate) and is bounded by its own timeout (5s by
default).

# Errors

Failures collapse into two sentinels:

  - ErrUnavailable: transport error, timeout, non-2xx status, open circuit
  - ErrMalformed: the body could not be decoded

Non-2xx responses are reported as *StatusError, which unwraps to ErrUnavailable.

# Circuit Breaker

CircuitBreakerClient wraps Client with sony/gobreaker. Decode failures and 4xx
responses other than 429 leave the breaker alone, since the remote is up.
While the circuit is open, calls fail fast with ErrUnavailable.
*/
package tmdb
