// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

// Package catalog holds the fixed set of movie titles the service can recommend.
//
// The catalog is loaded once at startup from a precomputed artifact and is
// read-only afterwards. Each entry's index is its row and column in the
// similarity index, so the two structures must always be loaded together
// (see LoadArtifact).
//
// # Lookup
//
// IndexOf is an exact, case-sensitive match that resolves to the first entry
// carrying the title. Titles are expected to be unique but this is not enforced.
// A miss returns an error wrapping ErrNotFound, which is the only error the
// recommendation path hands back to its caller.
//
// # Random Picks
//
// Picker returns a uniformly random title for the "feeling lucky" flow:
//
//	picker := catalog.NewPicker(cat)
//	title, err := picker.PickRandom()
//
// # Thread Safety
//
// Catalog is immutable after construction and safe for concurrent reads.
// Picker guards its random source with a mutex.
package catalog
