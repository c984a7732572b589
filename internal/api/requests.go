// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package api

import "net/http"

// RecommendationsRequest represents the validated query parameters for
// GET /api/v1/recommendations.
//
// Fields:
//   - Title: Exact catalog title to recommend for (required)
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,max=500"`
}

// parseRecommendationsRequest reads the title parameter. The value is used
// verbatim; catalog lookup is an exact match, so no trimming or case folding.
func parseRecommendationsRequest(r *http.Request) RecommendationsRequest {
	return RecommendationsRequest{
		Title: r.URL.Query().Get("title"),
	}
}
