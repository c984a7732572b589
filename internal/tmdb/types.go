// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package tmdb

import (
	"strconv"

	"github.com/goccy/go-json"
)

// SearchResponse is the /search/movie payload.
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// SearchResult is one /search/movie match. Optional fields are pointers so
// that absent and null values can be told apart from zero values.
type SearchResult struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	PosterPath  *string         `json:"poster_path"`
	ReleaseDate *string         `json:"release_date"`
	VoteAverage *float64        `json:"vote_average"`
	Overview    *string         `json:"overview"`
}

// MovieID returns the positive integer id, or false when it is absent or not an integer.
func (r *SearchResult) MovieID() (int64, bool) {
	if len(r.ID) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(string(r.ID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Credits is the /movie/{id}/credits payload.
type Credits struct {
	ID   int64        `json:"id"`
	Crew []CrewMember `json:"crew"`
}

// CrewMember is one crew entry.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Videos is the /movie/{id}/videos payload.
type Videos struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Video is one video entry. Type is e.g. "Trailer" or "Teaser".
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// MovieDetails is the subset of /movie/{id} MovieVerse reads.
type MovieDetails struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	IMDbID *string `json:"imdb_id"`
}
