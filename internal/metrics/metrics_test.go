// MovieVerse - Movie Recommendations with Remote Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieverse

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramCount extracts the sample count from a Prometheus histogram
func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordTMDBRequest(t *testing.T) {
	before := testutil.ToFloat64(TMDBRequestsTotal.WithLabelValues("search", "success"))
	RecordTMDBRequest("search", "success", 120*time.Millisecond)
	after := testutil.ToFloat64(TMDBRequestsTotal.WithLabelValues("search", "success"))

	if after-before != 1 {
		t.Errorf("tmdb_requests_total delta = %v, want 1", after-before)
	}
}

func TestRecordMemoLookup(t *testing.T) {
	hits := testutil.ToFloat64(MemoHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(MemoMisses.WithLabelValues("test"))

	RecordMemoLookup("test", true)
	RecordMemoLookup("test", false)
	RecordMemoLookup("test", false)

	if got := testutil.ToFloat64(MemoHits.WithLabelValues("test")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(MemoMisses.WithLabelValues("test")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("not_found"))
	samples := histogramCount(t, RecommendationDuration)

	RecordRecommendation("not_found", time.Millisecond)

	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("not_found")) - before; got != 1 {
		t.Errorf("recommendations_total delta = %v, want 1", got)
	}
	if got := histogramCount(t, RecommendationDuration) - samples; got != 1 {
		t.Errorf("recommendation duration samples delta = %d, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+2 {
		t.Errorf("active = %v, want %v", got, start+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active = %v, want %v", got, start)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/titles", "200"))
	RecordAPIRequest("GET", "/api/v1/titles", "200", 5*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/titles", "200")) - before; got != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", got)
	}
}
