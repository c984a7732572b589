// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package tmdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/movieverse/internal/config"
	"github.com/tomtom215/movieverse/internal/logging"
	"github.com/tomtom215/movieverse/internal/metrics"
)

// BreakerName is the circuit breaker label in logs and metrics.
const BreakerName = "tmdb-api"

// CircuitBreakerClient wraps an API with a circuit breaker.
// Once TMDB is failing, open-state calls return ErrUnavailable without touching
// the network until the breaker timeout elapses.
type CircuitBreakerClient struct {
	client API
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
	logger zerolog.Logger
}

var _ API = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client using the breaker settings in cfg.
// The circuit opens when, within one interval, at least BreakerMinRequests
// calls were made and the failure ratio reached BreakerFailureRatio.
func NewCircuitBreakerClient(client API, cfg *config.TMDBConfig) *CircuitBreakerClient {
	logger := logging.WithComponent("tmdb")

	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)

	minRequests := cfg.BreakerMinRequests
	ratio := cfg.BreakerFailureRatio

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= ratio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Bad payloads and client errors mean TMDB itself is up. A caller
		// that went away says nothing about TMDB either.
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, ErrMalformed) || errors.Is(err, context.Canceled) {
				return true
			}
			var serr *StatusError
			return errors.As(err, &serr) && serr.isClientError()
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   BreakerName,
		logger: logger,
	}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// StateName returns the current breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) StateName() string {
	return stateToString(cbc.cb.State())
}

// execute runs fn through the breaker. Rejections are reported as ErrUnavailable.
func (cbc *CircuitBreakerClient) execute(endpoint string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		metrics.RecordTMDBRequest(endpoint, "rejected", 0)
		cbc.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if errors.Is(err, context.Canceled) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "canceled").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
	counts := cbc.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
	return nil, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// SearchMovie runs a title search with circuit breaker protection.
func (cbc *CircuitBreakerClient) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	return castResult[SearchResponse](cbc.execute(EndpointSearch, func() (interface{}, error) {
		return cbc.client.SearchMovie(ctx, query)
	}))
}

// Credits fetches credits with circuit breaker protection.
func (cbc *CircuitBreakerClient) Credits(ctx context.Context, movieID int64) (*Credits, error) {
	return castResult[Credits](cbc.execute(EndpointCredits, func() (interface{}, error) {
		return cbc.client.Credits(ctx, movieID)
	}))
}

// Videos fetches videos with circuit breaker protection.
func (cbc *CircuitBreakerClient) Videos(ctx context.Context, movieID int64) (*Videos, error) {
	return castResult[Videos](cbc.execute(EndpointVideos, func() (interface{}, error) {
		return cbc.client.Videos(ctx, movieID)
	}))
}

// Details fetches movie details with circuit breaker protection.
func (cbc *CircuitBreakerClient) Details(ctx context.Context, movieID int64) (*MovieDetails, error) {
	return castResult[MovieDetails](cbc.execute(EndpointDetails, func() (interface{}, error) {
		return cbc.client.Details(ctx, movieID)
	}))
}
