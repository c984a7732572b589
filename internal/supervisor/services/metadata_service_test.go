// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/movieverse/internal/cache"
	"github.com/tomtom215/movieverse/internal/metadata"
)

type fakeSource struct {
	mu      sync.Mutex
	fetched []string
	block   chan struct{}
}

func (f *fakeSource) FetchDetails(ctx context.Context, title string) metadata.Record {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
		}
	}
	f.mu.Lock()
	f.fetched = append(f.fetched, title)
	f.mu.Unlock()
	if title == "Unknown" {
		return metadata.NotFound(title)
	}
	return metadata.Record{Title: title, ReleaseDate: "2001-01-01"}
}

func (f *fakeSource) MemoStats() map[string]cache.Stats {
	return map[string]cache.Stats{
		"search":   {Hits: 3, Misses: 2, Entries: 2, HitRate: 60},
		"director": {Hits: 1, Misses: 1, Entries: 1, HitRate: 50},
	}
}

func (f *fakeSource) Fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func TestNewMetadataService_Defaults(t *testing.T) {
	svc := NewMetadataService(&fakeSource{}, []string{"A", "B"}, MetadataServiceConfig{WarmupTitles: 10}, discard())

	if svc.config.StatsInterval != defaultStatsInterval {
		t.Errorf("StatsInterval = %v", svc.config.StatsInterval)
	}
	if svc.config.WarmupTitles != 2 {
		t.Errorf("WarmupTitles = %d, want capped at 2", svc.config.WarmupTitles)
	}
	if svc.String() != "metadata-service" {
		t.Errorf("String() = %q", svc.String())
	}
	var _ suture.Service = svc
}

func TestMetadataService_WarmsLeadingTitlesInOrder(t *testing.T) {
	src := &fakeSource{}
	titles := []string{"Heat", "Unknown", "Up", "Alien"}
	svc := NewMetadataService(src, titles, MetadataServiceConfig{WarmupTitles: 3, StatsInterval: time.Hour}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for len(src.Fetched()) < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}

	got := src.Fetched()
	want := []string{"Heat", "Unknown", "Up"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("fetched = %v, want %v", got, want)
	}
}

func TestMetadataService_NoWarmupByDefault(t *testing.T) {
	src := &fakeSource{}
	svc := NewMetadataService(src, []string{"Heat"}, MetadataServiceConfig{StatsInterval: time.Hour}, discard())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if n := len(src.Fetched()); n != 0 {
		t.Errorf("fetched %d titles with warm-up disabled", n)
	}
}

func TestMetadataService_WarmupCanceled(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	svc := NewMetadataService(src, []string{"A", "B", "C"}, MetadataServiceConfig{WarmupTitles: 3, StatsInterval: time.Hour}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("warm-up did not stop on cancellation")
	}
	if svc.warmed {
		t.Error("canceled warm-up marked as complete")
	}
	if n := len(src.Fetched()); n != 1 {
		t.Errorf("fetched %d titles, want 1 before cancellation was seen", n)
	}
}

func TestMetadataService_WarmupRunsOnce(t *testing.T) {
	src := &fakeSource{}
	svc := NewMetadataService(src, []string{"A", "B"}, MetadataServiceConfig{WarmupTitles: 2, StatsInterval: time.Hour}, discard())

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		_ = svc.Serve(ctx)
		cancel()
	}

	if n := len(src.Fetched()); n != 2 {
		t.Errorf("fetched %d titles across restarts, want 2", n)
	}
}

func TestMetadataService_ReportsStats(t *testing.T) {
	var buf bytes.Buffer
	svc := NewMetadataService(&fakeSource{}, nil, MetadataServiceConfig{StatsInterval: time.Hour}, zerolog.New(&buf))

	svc.reportStats()

	out := buf.String()
	for _, want := range []string{
		`"message":"metadata memo statistics"`,
		`"search":{"hits":3,"misses":2,"entries":2,"hit_rate":60}`,
		`"director":{"hits":1,"misses":1,"entries":1,"hit_rate":50}`,
		`"service":"metadata"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
