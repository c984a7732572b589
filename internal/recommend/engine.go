// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/movieverse/internal/catalog"
	"github.com/tomtom215/movieverse/internal/config"
	"github.com/tomtom215/movieverse/internal/logging"
	"github.com/tomtom215/movieverse/internal/metrics"
	"github.com/tomtom215/movieverse/internal/similarity"
)

// ErrNoFetcher is returned by NewEngine when no metadata fetcher is supplied.
var ErrNoFetcher = errors.New("metadata fetcher is required")

// Engine turns a selected title into K enriched recommendations.
// It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	index   *similarity.Index
	fetcher MetadataFetcher
	picker  *catalog.Picker

	workers      int
	fetchTimeout time.Duration

	logger zerolog.Logger

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// NewEngine creates an engine over a loaded catalog and its similarity index.
// cfg may be nil, in which case DefaultWorkers and no per-fetch timeout are used.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, idx *similarity.Index, fetcher MetadataFetcher, cfg *config.RecommendConfig, logger zerolog.Logger) (*Engine, error) {
	if cat == nil || idx == nil {
		return nil, fmt.Errorf("recommend: catalog and similarity index are required")
	}
	if cat.Len() != idx.Len() {
		return nil, fmt.Errorf("%w: %d titles, %d similarity rows", catalog.ErrArtifactMismatch, cat.Len(), idx.Len())
	}
	if fetcher == nil {
		return nil, ErrNoFetcher
	}

	workers := DefaultWorkers
	var fetchTimeout time.Duration
	if cfg != nil {
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
		fetchTimeout = cfg.FetchTimeout
	}

	metrics.CatalogTitles.Set(float64(cat.Len()))

	return &Engine{
		catalog:      cat,
		index:        idx,
		fetcher:      fetcher,
		picker:       catalog.NewPicker(cat),
		workers:      workers,
		fetchTimeout: fetchTimeout,
		logger:       logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetPicker replaces the random title picker. Intended for tests.
func (e *Engine) SetPicker(p *catalog.Picker) {
	e.picker = p
}

// Catalog returns the catalog the engine recommends from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Recommend returns the K titles most similar to selected, each with metadata,
// in descending similarity order. An unknown title yields an error wrapping
// catalog.ErrNotFound. Metadata problems never produce an error.
func (e *Engine) Recommend(ctx context.Context, selected string) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)
	logger := e.requestLogger(ctx, selected)

	index, err := e.catalog.IndexOf(selected)
	if err != nil {
		e.notFoundCount.Add(1)
		metrics.RecordRecommendation("not_found", time.Since(start))
		logger.Debug().Msg("selected title not in catalog")
		return nil, fmt.Errorf("recommend: %w", err)
	}

	neighbors, err := e.index.NeighborsOf(index, K)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("error", time.Since(start))
		return nil, fmt.Errorf("recommend: rank neighbors of %q: %w", selected, err)
	}

	items := make([]Recommendation, len(neighbors))
	titles := make([]string, len(neighbors))
	for rank, n := range neighbors {
		title, err := e.catalog.TitleAt(n.Index)
		if err != nil {
			e.errorCount.Add(1)
			metrics.RecordRecommendation("error", time.Since(start))
			return nil, fmt.Errorf("recommend: resolve neighbor %d: %w", n.Index, err)
		}
		titles[rank] = title
		items[rank] = Recommendation{
			Rank:  rank + 1,
			Index: n.Index,
			Title: title,
			Score: n.Score,
		}
	}

	e.enrich(ctx, items)

	elapsed := time.Since(start)
	metrics.RecordRecommendation("success", elapsed)
	logger.Debug().
		Int("returned", len(items)).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return &Result{
		Selected: selected,
		Titles:   titles,
		Items:    items,
	}, nil
}

// RecommendRandom picks a uniformly random catalog title and recommends for it.
func (e *Engine) RecommendRandom(ctx context.Context) (*Result, error) {
	title, err := e.picker.PickRandom()
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	return e.Recommend(ctx, title)
}

// PickRandom returns a uniformly random catalog title.
func (e *Engine) PickRandom() (string, error) {
	return e.picker.PickRandom()
}

// Stats returns request counters since start.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		NotFound: e.notFoundCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}

// enrich fetches metadata for every item on at most e.workers goroutines.
// Each goroutine writes only items[i], so order is fixed before fan-out.
func (e *Engine) enrich(ctx context.Context, items []Recommendation) {
	g := new(errgroup.Group)
	g.SetLimit(e.workers)

	for i := range items {
		g.Go(func() error {
			fctx := ctx
			if e.fetchTimeout > 0 {
				var cancel context.CancelFunc
				fctx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
				defer cancel()
			}
			items[i].Record = e.fetcher.FetchDetails(fctx, items[i].Title)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
}

func (e *Engine) requestLogger(ctx context.Context, selected string) zerolog.Logger {
	lc := e.logger.With().Str("selected", selected)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	return lc.Logger()
}
