// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package models

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadinessStatus reports whether the service can answer recommendation requests.
//
// A ready service has a non-empty catalog. An open TMDB circuit does not make
// the service unready, since recommendations still return with placeholder
// metadata, but it is reported as "degraded".
type ReadinessStatus struct {
	Ready          bool    `json:"ready_to_serve"`
	CatalogTitles  int     `json:"catalog_titles"`
	MetadataSource string  `json:"metadata_source"`
	Uptime         float64 `json:"uptime"`
}

// Metadata source states reported by ReadinessStatus.
const (
	MetadataSourceOK       = "ok"
	MetadataSourceDegraded = "degraded"
	MetadataSourceUnknown  = "unknown"
)
