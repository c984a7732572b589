// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

/*
Package config loads and validates MovieVerse configuration.

Configuration is layered with Koanf v2: built-in defaults, then an optional YAML
file, then environment variables. Only variables listed in the mapping table are
read, so unrelated environment does not leak into the config.

# Example config.yaml

	tmdb:
	  api_key: "..."
	  request_timeout: 5s
	  rate_limit: 40
	catalog:
	  artifact_path: /data/movieverse/artifact.json.gz
	recommend:
	  workers: 5
	server:
	  port: 8501
	security:
	  cors_origins: ["https://movies.example.com"]
	logging:
	  level: info
	  format: json

# Environment Variables

	TMDB_API_KEY            required
	CATALOG_ARTIFACT_PATH   combined artifact (JSON, optionally .gz)
	CATALOG_TITLES_PATH     split layout, titles array
	CATALOG_SIMILARITY_PATH split layout, similarity rows
	RECOMMEND_WORKERS       metadata fetch concurrency (default 5)
	RECOMMEND_WARMUP_TITLES pre-fetch metadata for the first N titles (default 0)
	HTTP_PORT, HTTP_HOST    listener (default 0.0.0.0:8501)
	CORS_ORIGINS            comma-separated list
	LOG_LEVEL, LOG_FORMAT   logging

CONFIG_PATH points at a specific YAML file.

# Validation

Struct rules use go-playground/validator tags on the config types; cross-field
rules (catalog layout, CORS in production) are checked in Validate.
*/
package config
