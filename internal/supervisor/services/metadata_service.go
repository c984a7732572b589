// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movieverse/internal/cache"
	"github.com/tomtom215/movieverse/internal/metadata"
)

// defaultStatsInterval applies when StatsInterval is not positive.
const defaultStatsInterval = 5 * time.Minute

// MetadataSource is the fetcher surface the service drives.
type MetadataSource interface {
	FetchDetails(ctx context.Context, title string) metadata.Record
	MemoStats() map[string]cache.Stats
}

// MetadataServiceConfig holds configuration for the metadata service.
type MetadataServiceConfig struct {
	// WarmupTitles is how many leading catalog titles to fetch at startup.
	WarmupTitles int

	// StatsInterval is how often memo statistics are logged.
	StatsInterval time.Duration
}

// MetadataService warms the metadata memo and reports its statistics.
//
// Warm-up runs once per process. A restart after warm-up completed goes
// straight to reporting, so a crash loop does not repeat remote lookups.
type MetadataService struct {
	source MetadataSource
	titles []string
	config MetadataServiceConfig
	logger zerolog.Logger
	name   string

	warmed bool
}

// NewMetadataService creates the service. titles is the catalog in order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMetadataService(source MetadataSource, titles []string, cfg MetadataServiceConfig, logger zerolog.Logger) *MetadataService {
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = defaultStatsInterval
	}
	if cfg.WarmupTitles > len(titles) {
		cfg.WarmupTitles = len(titles)
	}
	return &MetadataService{
		source: source,
		titles: titles,
		config: cfg,
		logger: logger.With().Str("service", "metadata").Logger(),
		name:   "metadata-service",
	}
}

// Serve implements suture.Service.
func (s *MetadataService) Serve(ctx context.Context) error {
	if !s.warmed && s.config.WarmupTitles > 0 {
		if err := s.warmup(ctx); err != nil {
			return err
		}
	}
	s.warmed = true

	ticker := time.NewTicker(s.config.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.reportStats()
			return ctx.Err()
		case <-ticker.C:
			s.reportStats()
		}
	}
}

// warmup fetches the leading titles one at a time. FetchDetails never fails,
// so the only early exit is cancellation.
func (s *MetadataService) warmup(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().Int("titles", s.config.WarmupTitles).Msg("metadata warm-up starting")

	found := 0
	for i, title := range s.titles[:s.config.WarmupTitles] {
		if err := ctx.Err(); err != nil {
			s.logger.Info().Int("fetched", i).Msg("metadata warm-up canceled")
			return err
		}
		rec := s.source.FetchDetails(ctx, title)
		if !rec.IsNotFound() {
			found++
		}
	}

	s.logger.Info().
		Int("titles", s.config.WarmupTitles).
		Int("found", found).
		Dur("duration", time.Since(start)).
		Msg("metadata warm-up complete")
	return nil
}

func (s *MetadataService) reportStats() {
	stats := s.source.MemoStats()
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	event := s.logger.Info()
	for _, name := range names {
		st := stats[name]
		event = event.Dict(name, zerolog.Dict().
			Int64("hits", st.Hits).
			Int64("misses", st.Misses).
			Int("entries", st.Entries).
			Float64("hit_rate", st.HitRate))
	}
	event.Msg("metadata memo statistics")
}

// String returns the service name for logging.
func (s *MetadataService) String() string {
	return s.name
}
