// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable covers transport errors, timeouts, non-2xx statuses and an open circuit.
	ErrUnavailable = errors.New("tmdb unavailable")

	// ErrMalformed is returned when a response body cannot be decoded.
	ErrMalformed = errors.New("tmdb response malformed")
)

// StatusError is a non-2xx TMDB response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap makes errors.Is(err, ErrUnavailable) hold.
func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// isClientError reports a 4xx other than 429.
func (e *StatusError) isClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}
