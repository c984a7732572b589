// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movieverse/internal/catalog"
	"github.com/tomtom215/movieverse/internal/config"
	"github.com/tomtom215/movieverse/internal/metadata"
	"github.com/tomtom215/movieverse/internal/recommend"
	"github.com/tomtom215/movieverse/internal/supervisor"
	"github.com/tomtom215/movieverse/internal/supervisor/services"
	"github.com/tomtom215/movieverse/internal/tmdb"
)

// RecommendComponents holds the recommendation pipeline.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Breaker *tmdb.CircuitBreakerClient
	Fetcher *metadata.Fetcher
	Service *services.MetadataService
}

// loadCatalog reads the artifact from either the combined file or the split pair.
func loadCatalog(cfg *config.CatalogConfig) (*catalog.Artifact, error) {
	if cfg.UsesSplitFiles() {
		art, err := catalog.LoadArtifactParts(cfg.TitlesPath, cfg.SimilarityPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog from %s and %s: %w", cfg.TitlesPath, cfg.SimilarityPath, err)
		}
		return art, nil
	}
	if cfg.ArtifactPath == "" {
		return nil, fmt.Errorf("no catalog configured: set CATALOG_ARTIFACT_PATH or both CATALOG_TITLES_PATH and CATALOG_SIMILARITY_PATH")
	}
	art, err := catalog.LoadArtifact(cfg.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.ArtifactPath, err)
	}
	return art, nil
}

// initRecommend builds the TMDB client, the metadata fetcher and the engine
// over art, then registers the metadata service in the metadata layer of tree.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, art *catalog.Artifact, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	client := tmdb.NewClient(&cfg.TMDB)
	breaker := tmdb.NewCircuitBreakerClient(client, &cfg.TMDB)
	fetcher := metadata.NewFetcher(breaker, &cfg.TMDB, logger.With().Str("component", "metadata").Logger())

	engine, err := recommend.NewEngine(art.Catalog, art.Index, fetcher, &cfg.Recommend, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	service := services.NewMetadataService(fetcher, art.Catalog.AllTitles(), services.MetadataServiceConfig{
		WarmupTitles:  cfg.Recommend.WarmupTitles,
		StatsInterval: cfg.Recommend.StatsInterval,
	}, logger)
	if tree != nil {
		tree.AddMetadataService(service)
	}

	logger.Info().
		Int("titles", art.Catalog.Len()).
		Int("workers", cfg.Recommend.Workers).
		Dur("fetch_timeout", cfg.Recommend.FetchTimeout).
		Int("warmup_titles", cfg.Recommend.WarmupTitles).
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Msg("recommendation engine initialized")

	return &RecommendComponents{
		Engine:  engine,
		Breaker: breaker,
		Fetcher: fetcher,
		Service: service,
	}, nil
}
