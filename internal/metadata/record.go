// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package metadata

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Field defaults.
const (
	NotAvailable       = "N/A"
	DefaultOverview    = "No overview available."
	NotFoundOverview   = "No data"
	UnknownDirector    = "Unknown"
	notAvailableQuoted = `"N/A"`
)

// Rating is a TMDB vote average, or N/A when TMDB did not supply one.
// It encodes as a JSON number or the string "N/A".
type Rating struct {
	Value float64
	Valid bool
}

// RatingOf returns a present rating.
func RatingOf(v float64) Rating {
	return Rating{Value: v, Valid: true}
}

// String implements fmt.Stringer.
func (r Rating) String() string {
	if !r.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte(notAvailableQuoted), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte(notAvailableQuoted)) || bytes.Equal(data, []byte("null")) {
		*r = Rating{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rating must be a number or %s: %w", notAvailableQuoted, err)
	}
	*r = RatingOf(v)
	return nil
}

// Record is the display metadata for one movie. Records are never mutated
// after construction.
type Record struct {
	Title         string  `json:"title"`
	PosterURL     *string `json:"poster_url"`
	ReleaseDate   string  `json:"release_date"`
	Rating        Rating  `json:"rating"`
	Overview      string  `json:"overview"`
	Director      string  `json:"director"`
	TrailerURL    *string `json:"trailer_url"`
	ReferenceLink *string `json:"reference_link"`
}

// NotFound returns the sentinel record for a title TMDB has no data for.
func NotFound(title string) Record {
	return Record{
		Title:       title,
		ReleaseDate: NotAvailable,
		Overview:    NotFoundOverview,
		Director:    UnknownDirector,
	}
}

// IsNotFound reports whether r is the sentinel record.
func (r *Record) IsNotFound() bool {
	return r.PosterURL == nil &&
		r.TrailerURL == nil &&
		r.ReferenceLink == nil &&
		!r.Rating.Valid &&
		r.ReleaseDate == NotAvailable &&
		r.Overview == NotFoundOverview &&
		r.Director == UnknownDirector
}
