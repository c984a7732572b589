// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

// Package logging is the zerolog-backed structured logging layer for MovieVerse.
//
// A single global logger is configured once from the logging section of the
// service configuration. Components derive child loggers with WithComponent and
// take them by value in their constructors:
//
//	fetcher := metadata.NewFetcher(breaker, &cfg.TMDB, logging.WithComponent("metadata"))
//
// # Request Context
//
// HTTP middleware stores a request ID (full UUID) and a correlation ID (short
// UUID prefix) in the request context. Ctx returns a logger that carries both:
//
//	logging.Ctx(ctx).Info().Str("title", title).Msg("Recommendation served")
//
// # Output
//
// Format "json" writes one JSON object per line to stderr; "console" uses
// zerolog.ConsoleWriter for local development. Field names are fixed: time,
// level, message, error, caller.
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog so that libraries speaking slog, such
// as sutureslog for supervisor events, end up in the same stream.
package logging
