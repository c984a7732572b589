// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

// Package similarity provides nearest-neighbor queries over a precomputed
// square similarity table.
//
// Row i, column j is the similarity of catalog entries i and j. Higher is more
// similar. The table is produced offline and is neither symmetric-checked nor
// normalized here.
//
// Ranking drops exactly one entry, the highest-ranked one, as the query itself.
// This mirrors how the table is generated (the diagonal holds the maximum) and
// keeps results reproducible for tables with ties.
package similarity
