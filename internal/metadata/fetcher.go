// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package metadata

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/movieverse/internal/cache"
	"github.com/tomtom215/movieverse/internal/config"
	"github.com/tomtom215/movieverse/internal/logging"
	"github.com/tomtom215/movieverse/internal/tmdb"
)

const (
	jobDirector   = "Director"
	videoTrailer  = "Trailer"
	trailerParam  = "v"
	memoSearch    = "search"
	memoDirector  = "director"
	memoTrailer   = "trailer"
	memoReference = "reference"
)

// Fetcher resolves titles to Records with memoisation. Safe for concurrent use.
type Fetcher struct {
	api tmdb.API

	posterBase    string
	trailerBase   string
	referenceBase string

	searches   *cache.Memo[*tmdb.SearchResult]
	directors  *cache.Memo[string]
	trailers   *cache.Memo[*string]
	references *cache.Memo[*string]

	logger zerolog.Logger
}

// NewFetcher creates a Fetcher over api. URL bases come from cfg.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFetcher(api tmdb.API, cfg *config.TMDBConfig, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		api:           api,
		posterBase:    cfg.PosterBaseURL(),
		trailerBase:   cfg.TrailerBaseURL,
		referenceBase: strings.TrimRight(cfg.ReferenceBaseURL, "/"),
		searches:      cache.NewMemo[*tmdb.SearchResult](memoSearch),
		directors:     cache.NewMemo[string](memoDirector),
		trailers:      cache.NewMemo[*string](memoTrailer),
		references:    cache.NewMemo[*string](memoReference),
		logger:        logger,
	}
}

// MemoStats returns lookup counts for each memo, keyed by memo name.
func (f *Fetcher) MemoStats() map[string]cache.Stats {
	return map[string]cache.Stats{
		f.searches.Name():   f.searches.Stats(),
		f.directors.Name():  f.directors.Stats(),
		f.trailers.Name():   f.trailers.Stats(),
		f.references.Name(): f.references.Stats(),
	}
}

// FetchDetails returns display metadata for title. It never fails: any
// remote problem is replaced by the affected field's default.
func (f *Fetcher) FetchDetails(ctx context.Context, title string) Record {
	log := f.log(ctx)

	result, err := f.searches.Do(ctx, title, func(ctx context.Context) (*tmdb.SearchResult, error) {
		resp, err := f.api.SearchMovie(ctx, title)
		if err != nil {
			return nil, err
		}
		if len(resp.Results) == 0 {
			return nil, nil
		}
		first := resp.Results[0]
		return &first, nil
	})
	if err != nil {
		log.Warn().Err(err).Str("title", title).Msg("TMDB search failed, using placeholder record")
		return NotFound(title)
	}
	if result == nil {
		log.Debug().Str("title", title).Msg("No TMDB match")
		return NotFound(title)
	}

	rec := Record{
		Title:       title,
		PosterURL:   f.posterURL(result.PosterPath),
		ReleaseDate: orDefault(result.ReleaseDate, NotAvailable),
		Overview:    orDefault(result.Overview, DefaultOverview),
		Director:    UnknownDirector,
	}
	if result.VoteAverage != nil {
		rec.Rating = RatingOf(*result.VoteAverage)
	}

	id, ok := result.MovieID()
	if !ok {
		log.Debug().Str("title", title).RawJSON("id", rawOrNull(result.ID)).Msg("TMDB result has no usable id")
		return rec
	}

	// The three lookups are independent; each writes only its own field.
	var g errgroup.Group
	g.Go(func() error {
		rec.Director = f.director(ctx, id)
		return nil
	})
	g.Go(func() error {
		rec.TrailerURL = f.trailer(ctx, id)
		return nil
	})
	g.Go(func() error {
		rec.ReferenceLink = f.reference(ctx, id)
		return nil
	})
	_ = g.Wait()

	return rec
}

func (f *Fetcher) director(ctx context.Context, id int64) string {
	name, err := f.directors.Do(ctx, idKey(id), func(ctx context.Context) (string, error) {
		credits, err := f.api.Credits(ctx, id)
		if err != nil {
			return "", err
		}
		for _, member := range credits.Crew {
			if member.Job == jobDirector {
				return member.Name, nil
			}
		}
		return UnknownDirector, nil
	})
	if err != nil {
		f.log(ctx).Debug().Err(err).Int64("tmdb_id", id).Msg("Credits lookup failed")
		return UnknownDirector
	}
	return name
}

func (f *Fetcher) trailer(ctx context.Context, id int64) *string {
	link, err := f.trailers.Do(ctx, idKey(id), func(ctx context.Context) (*string, error) {
		videos, err := f.api.Videos(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, v := range videos.Results {
			if v.Type == videoTrailer {
				if v.Key == "" {
					return nil, nil
				}
				return f.trailerURL(v.Key), nil
			}
		}
		return nil, nil
	})
	if err != nil {
		f.log(ctx).Debug().Err(err).Int64("tmdb_id", id).Msg("Videos lookup failed")
		return nil
	}
	return link
}

func (f *Fetcher) reference(ctx context.Context, id int64) *string {
	link, err := f.references.Do(ctx, idKey(id), func(ctx context.Context) (*string, error) {
		details, err := f.api.Details(ctx, id)
		if err != nil {
			return nil, err
		}
		if details.IMDbID == nil || *details.IMDbID == "" {
			return nil, nil
		}
		s := f.referenceBase + "/" + *details.IMDbID
		return &s, nil
	})
	if err != nil {
		f.log(ctx).Debug().Err(err).Int64("tmdb_id", id).Msg("Details lookup failed")
		return nil
	}
	return link
}

func (f *Fetcher) posterURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	s := f.posterBase + "/" + strings.TrimLeft(*path, "/")
	return &s
}

func (f *Fetcher) trailerURL(key string) *string {
	s := f.trailerBase + "?" + url.Values{trailerParam: []string{key}}.Encode()
	return &s
}

func (f *Fetcher) log(ctx context.Context) *zerolog.Logger {
	lc := f.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	l := lc.Logger()
	return &l
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func rawOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
