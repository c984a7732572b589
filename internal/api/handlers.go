// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/movieverse/internal/catalog"
	"github.com/tomtom215/movieverse/internal/middleware"
	"github.com/tomtom215/movieverse/internal/models"
	"github.com/tomtom215/movieverse/internal/recommend"
)

// Recommender is the engine surface the handlers depend on.
type Recommender interface {
	Recommend(ctx context.Context, selected string) (*recommend.Result, error)
	RecommendRandom(ctx context.Context) (*recommend.Result, error)
	PickRandom() (string, error)
	Catalog() *catalog.Catalog
	Stats() recommend.Stats
}

// BreakerStatus reports the TMDB circuit breaker state by name.
type BreakerStatus interface {
	StateName() string
}

// Handler serves the HTTP API.
type Handler struct {
	engine    Recommender
	breaker   BreakerStatus
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a handler. breaker and perfMon may be nil.
func NewHandler(engine Recommender, breaker BreakerStatus, perfMon *middleware.PerformanceMonitor) *Handler {
	return &Handler{
		engine:    engine,
		breaker:   breaker,
		perfMon:   perfMon,
		startTime: time.Now(),
	}
}

// Titles lists every catalog title in catalog order.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	titles := h.engine.Catalog().AllTitles()

	respondSuccess(w, r, models.TitlesResponse{
		Titles: titles,
		Count:  len(titles),
	}, start)
}

// RandomTitle returns one uniformly random catalog title.
func (h *Handler) RandomTitle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title, err := h.engine.PickRandom()
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, models.RandomTitleResponse{Title: title}, start)
}

// Recommendations returns the five titles most similar to ?title=, each with
// TMDB metadata. The title must match a catalog entry exactly.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := parseRecommendationsRequest(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.Recommend(r.Context(), req.Title)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, result, start)
}

// RandomRecommendations picks a random title and recommends for it.
func (h *Handler) RandomRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := h.engine.RecommendRandom(r.Context())
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, result, start)
}

// respondEngineError maps engine errors to HTTP responses.
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeTitleNotFound, "Title is not in the catalog", nil)
	case errors.Is(err, catalog.ErrEmptyCatalog):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeCatalogEmpty, "No titles are loaded", nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to build recommendations", err)
	}
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.HealthStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK once a non-empty catalog is loaded, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	titles := h.engine.Catalog().Len()
	ready := titles > 0

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.ReadinessStatus{
			Ready:          ready,
			CatalogTitles:  titles,
			MetadataSource: h.metadataSource(),
			Uptime:         time.Since(h.startTime).Seconds(),
		},
		Metadata: responseMetadata(r, time.Time{}),
	})
}

func (h *Handler) metadataSource() string {
	if h.breaker == nil {
		return models.MetadataSourceUnknown
	}
	switch h.breaker.StateName() {
	case "closed":
		return models.MetadataSourceOK
	case "open", "half-open":
		return models.MetadataSourceDegraded
	default:
		return models.MetadataSourceUnknown
	}
}

// Performance returns per-route latency statistics and engine counters.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var endpoints []middleware.EndpointStats
	if h.perfMon != nil {
		endpoints = h.perfMon.GetStats()
	}
	if endpoints == nil {
		endpoints = []middleware.EndpointStats{}
	}

	respondSuccess(w, r, map[string]interface{}{
		"endpoints":      endpoints,
		"recommendation": h.engine.Stats(),
	}, start)
}

// NotFound answers unmatched routes with the standard envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
