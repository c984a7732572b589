// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package models defines the JSON shapes of the HTTP API.

Key Components:

  - APIResponse: Standardized response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time)
  - TitlesResponse, RandomTitleResponse: catalog listing payloads
  - HealthStatus, ReadinessStatus: probe payloads

Recommendation payloads are recommend.Result values and are serialized
directly; this package only holds the envelope and the smaller DTOs.
*/
package models
