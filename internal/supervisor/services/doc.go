// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package services provides suture.Service wrappers for MovieVerse components.

  - HTTPServerService: runs an *http.Server, shutting down gracefully on cancel
  - MetadataService: optional metadata memo warm-up plus periodic memo statistics

Every service implements suture.Service (Serve(ctx) error) and fmt.Stringer,
which suture uses to name the service in its events.
*/
package services
