// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/movieverse/internal/metrics"
)

// Stats tracks memo lookups.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`

	// HitRate is the share of lookups served from the memo, as a percentage.
	HitRate float64 `json:"hit_rate"`
}

// Memo is a typed, non-expiring key/value memo with in-flight deduplication.
type Memo[V any] struct {
	name  string
	store *gocache.Cache
	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo creates an empty memo. name labels the memo's metrics.
func NewMemo[V any](name string) *Memo[V] {
	metrics.MemoEntries.WithLabelValues(name).Set(0)
	return &Memo[V]{
		name:  name,
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Name returns the metrics label of the memo.
func (m *Memo[V]) Name() string {
	return m.name
}

// Do returns the stored value for key, or calls load once and stores its
// result on success. Concurrent callers missing on the same key wait for a
// single load and share its result.
//
// The load outlives the caller that started it: it runs under ctx with
// cancellation removed, so load must bound itself (the TMDB client applies
// its per-request timeout). A caller whose ctx ends stops waiting and gets
// ctx.Err(); the other waiters still receive the shared result.
func (m *Memo[V]) Do(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	var zero V
	if v, ok := m.lookup(key); ok {
		m.record(true)
		return v, nil
	}
	m.record(false)

	loadCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(key, func() (interface{}, error) {
		// A previous flight may have stored the value between lookup and DoChan.
		if v, ok := m.lookup(key); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return v, err
		}
		m.set(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, ok := res.Val.(V)
		if !ok && res.Val != nil {
			return zero, fmt.Errorf("memo %s: unexpected value type %T", m.name, res.Val)
		}
		return v, nil
	}
}

// Len returns the number of stored entries.
func (m *Memo[V]) Len() int {
	return m.store.ItemCount()
}

// Stats returns a snapshot of lookup counts.
func (m *Memo[V]) Stats() Stats {
	st := Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: m.store.ItemCount(),
	}
	if total := st.Hits + st.Misses; total > 0 {
		st.HitRate = float64(st.Hits) / float64(total) * 100
	}
	return st
}

func (m *Memo[V]) lookup(key string) (V, bool) {
	var zero V
	raw, ok := m.store.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		return zero, false
	}
	return v, true
}

func (m *Memo[V]) set(key string, value V) {
	m.store.Set(key, value, gocache.NoExpiration)
	metrics.MemoEntries.WithLabelValues(m.name).Set(float64(m.store.ItemCount()))
}

func (m *Memo[V]) record(hit bool) {
	if hit {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	metrics.RecordMemoLookup(m.name, hit)
}
