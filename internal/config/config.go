// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all service configuration.
// Load it with LoadWithKoanf; see defaultConfig for defaults.
type Config struct {
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// TMDBConfig holds the metadata provider connection settings.
//
// Environment Variables:
//   - TMDB_API_KEY: API key sent as the api_key query parameter (required)
//   - TMDB_BASE_URL: API root (default: https://api.themoviedb.org/3)
//   - TMDB_REQUEST_TIMEOUT: per-request timeout (default: 5s)
//   - TMDB_RATE_LIMIT / TMDB_RATE_BURST: outbound requests per second and burst
type TMDBConfig struct {
	APIKey           string        `koanf:"api_key" validate:"required"`
	BaseURL          string        `koanf:"base_url" validate:"required,http_url"`
	ImageBaseURL     string        `koanf:"image_base_url" validate:"required,http_url"`
	PosterSize       string        `koanf:"poster_size" validate:"required"`
	TrailerBaseURL   string        `koanf:"trailer_base_url" validate:"required,http_url"`
	ReferenceBaseURL string        `koanf:"reference_base_url" validate:"required,http_url"`
	Language         string        `koanf:"language"`
	RequestTimeout   time.Duration `koanf:"request_timeout" validate:"gt=0"`
	RateLimit        float64       `koanf:"rate_limit" validate:"gt=0"`
	RateBurst        int           `koanf:"rate_burst" validate:"gte=1"`

	// Circuit breaker tuning (sony/gobreaker)
	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests" validate:"gte=1"`
	BreakerInterval     time.Duration `koanf:"breaker_interval" validate:"gte=0"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests" validate:"gte=1"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio" validate:"gt=0,lte=1"`
}

// PosterBaseURL returns the image root with the poster size appended,
// e.g. https://image.tmdb.org/t/p/w500.
func (c *TMDBConfig) PosterBaseURL() string {
	return strings.TrimRight(c.ImageBaseURL, "/") + "/" + strings.Trim(c.PosterSize, "/")
}

// CatalogConfig locates the precomputed catalog artifact.
// Either ArtifactPath or both TitlesPath and SimilarityPath must be set.
type CatalogConfig struct {
	ArtifactPath   string `koanf:"artifact_path"`
	TitlesPath     string `koanf:"titles_path"`
	SimilarityPath string `koanf:"similarity_path"`
}

// UsesSplitFiles reports whether the catalog is loaded from two files.
func (c *CatalogConfig) UsesSplitFiles() bool {
	return c.ArtifactPath == "" && c.TitlesPath != "" && c.SimilarityPath != ""
}

// RecommendConfig tunes the recommendation fan-out.
type RecommendConfig struct {
	// Workers bounds concurrent metadata fetches per recommendation.
	Workers int `koanf:"workers" validate:"gte=1,lte=64"`

	// FetchTimeout bounds one FetchDetails call including its sub-fetches.
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gt=0"`

	// WarmupTitles pre-fetches metadata for the first N catalog titles at
	// startup. 0 disables warm-up.
	WarmupTitles int `koanf:"warmup_titles" validate:"gte=0"`

	// StatsInterval is how often memo statistics are logged.
	StatsInterval time.Duration `koanf:"stats_interval" validate:"gte=1s"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns host:port for net/http.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SecurityConfig holds CORS and inbound rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1,lte=100000"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=1s,lte=1h"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Security.CORSOrigins = append([]string(nil), c.Security.CORSOrigins...)
	return &out
}

// Redacted returns a copy safe for logging.
func (c *Config) Redacted() *Config {
	out := c.Clone()
	if out.TMDB.APIKey != "" {
		out.TMDB.APIKey = "REDACTED"
	}
	return out
}
