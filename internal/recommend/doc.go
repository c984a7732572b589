// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

// Package recommend produces enriched recommendations for a catalog title.
//
// # Pipeline
//
// For a selected title the engine:
//
//  1. resolves the title to its catalog index (catalog.ErrNotFound otherwise)
//  2. takes the K most similar entries from the similarity index
//  3. maps neighbor indices back to titles
//  4. fetches metadata for all K titles concurrently on a bounded pool
//  5. returns titles and records in rank order
//
// K is fixed at 5. Output order is the similarity rank, never the order in which
// metadata fetches complete: every worker writes into its own slot of a
// pre-sized slice.
//
// Metadata failures never fail a recommendation. The fetcher degrades to
// placeholder values, so a result always carries one record per neighbor.
//
// # Usage
//
//	engine, err := recommend.NewEngine(artifact.Catalog, artifact.Index, fetcher, &cfg.Recommend, logger)
//	if err != nil {
//	    return err
//	}
//
//	res, err := engine.Recommend(ctx, "The Dark Knight")
//	if errors.Is(err, catalog.ErrNotFound) {
//	    // unknown title
//	}
//
// # Thread Safety
//
// The engine holds only read-only state and is safe for concurrent use.
package recommend
