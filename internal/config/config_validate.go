// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package config

import (
	"errors"
	"fmt"

	"github.com/tomtom215/movieverse/internal/validation"
)

// ErrNoCatalogSource is returned when no artifact location is configured.
var ErrNoCatalogSource = errors.New("catalog artifact not configured: set CATALOG_ARTIFACT_PATH or both CATALOG_TITLES_PATH and CATALOG_SIMILARITY_PATH")

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	return c.validateCORS()
}

// validateCatalog requires exactly one artifact layout.
func (c *Config) validateCatalog() error {
	cat := &c.Catalog
	if cat.ArtifactPath != "" {
		if cat.TitlesPath != "" || cat.SimilarityPath != "" {
			return fmt.Errorf("catalog: artifact_path and titles_path/similarity_path are mutually exclusive")
		}
		return nil
	}
	if cat.TitlesPath == "" && cat.SimilarityPath == "" {
		return ErrNoCatalogSource
	}
	if cat.TitlesPath == "" || cat.SimilarityPath == "" {
		return fmt.Errorf("catalog: titles_path and similarity_path must be set together")
	}
	return nil
}

// validateCORS rejects a wildcard origin in production.
func (c *Config) validateCORS() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production; list explicit origins instead")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports whether startup should log a CORS warning:
// a wildcard origin outside development. Production never gets this far,
// since validateCORS rejects it.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Server.Environment != "development" && c.hasWildcardCORS()
}
