// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package cache provides the process-lifetime memo used by the metadata client.

A Memo maps a string key to a typed value and never expires entries. Storage is
backed by github.com/patrickmn/go-cache with NoExpiration; concurrent misses for
the same key are collapsed with golang.org/x/sync/singleflight so only one
loader runs per key at a time.

# Usage Example

	searches := cache.NewMemo[*tmdb.SearchResponse]("search")

	resp, err := searches.Do(ctx, title, func(ctx context.Context) (*tmdb.SearchResponse, error) {
	    return api.SearchMovie(ctx, title)
	})

Only successful loads are stored. A failed load is returned to every waiting
caller and retried on the next Do.

A shared load is not canceled when the caller that started it goes away.
Each caller stops waiting when its own context ends, while the load runs on
to completion for everyone else.

# Metrics

Lookups are counted in metadata_memo_hits_total and metadata_memo_misses_total,
labelled by memo name. The current entry count is exported as metadata_memo_entries.

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
