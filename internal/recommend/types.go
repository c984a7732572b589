// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package recommend

import (
	"context"

	"github.com/tomtom215/movieverse/internal/metadata"
)

// K is the number of recommendations returned for a title.
const K = 5

// DefaultWorkers is the metadata fan-out width when none is configured.
const DefaultWorkers = K

// MetadataFetcher resolves a title to display metadata. Implementations must
// not fail; remote problems are reported through placeholder field values.
type MetadataFetcher interface {
	FetchDetails(ctx context.Context, title string) metadata.Record
}

// Recommendation is one ranked, enriched neighbor.
type Recommendation struct {
	// Rank is 1-based.
	Rank int `json:"rank"`

	// Index is the neighbor's catalog position.
	Index int `json:"index"`

	Title  string          `json:"title"`
	Score  float64         `json:"score"`
	Record metadata.Record `json:"metadata"`
}

// Result is the ordered output for one selected title.
type Result struct {
	Selected string           `json:"selected"`
	Titles   []string         `json:"titles"`
	Items    []Recommendation `json:"items"`
}

// Stats counts engine requests by outcome.
type Stats struct {
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
	Errors   int64 `json:"errors"`
}
