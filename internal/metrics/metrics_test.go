// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recommend", "200"))

	RecordAPIRequest("POST", "/api/recommend", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/recommend", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	counter := RecommendationsTotal.WithLabelValues("5", "Balanced (Low-Calorie) Foods")
	before := testutil.ToFloat64(counter)
	beforeCount := histogramCount(t, RecommendationDuration)

	RecordRecommendation(5, "Balanced (Low-Calorie) Foods", 200*time.Microsecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("recommendations_total = %v, want %v", got, before+1)
	}
	if got := histogramCount(t, RecommendationDuration); got != beforeCount+1 {
		t.Errorf("duration sample count = %d, want %d", got, beforeCount+1)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(RecommendationCacheHits)
	misses := testutil.ToFloat64(RecommendationCacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(RecommendationCacheHits); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(RecommendationCacheMisses); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestRecordArtifacts(t *testing.T) {
	RecordArtifacts("v1", 19, 42)

	if got := testutil.ToFloat64(FoodTableItems); got != 42 {
		t.Errorf("food_table_items = %v, want 42", got)
	}
	if got := testutil.ToFloat64(ModelInfo.WithLabelValues("v1", "19")); got != 1 {
		t.Errorf("model_info = %v, want 1", got)
	}

	RecordArtifacts("v2", 19, 40)
	if n := testutil.CollectAndCount(ModelInfo); n != 1 {
		t.Errorf("model_info series = %d, want 1 after reload", n)
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		t.Errorf("lint %s: %s", p.Metric, p.Text)
	}
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := h.Write(m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
