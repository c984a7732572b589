// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package metadata turns a movie title into a display Record using TMDB.

Fetcher.FetchDetails never returns an error. Transport failures, timeouts,
non-2xx statuses, undecodable bodies and an open circuit breaker all degrade to
per-field defaults:

	release_date    "N/A"
	rating          "N/A"
	overview        "No overview available."
	director        "Unknown"
	poster_url      null
	trailer_url     null
	reference_link  null

A title with no search match, or whose search could not be completed, yields
the NotFound sentinel record.

Search results are memoised by title and sub-fetch results by TMDB id for the
lifetime of the Fetcher. Failed lookups are not memoised and are retried on the
next call.
*/
package metadata
