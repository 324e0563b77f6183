package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/metrics"
)

func TestAdminMetricsHandler_Summary(t *testing.T) {
	reg := prometheus.NewRegistry()

	posted := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metrics.MetricNameListingsPosted, Help: "h"},
		[]string{metrics.LabelCategory, metrics.LabelCondition})
	failures := prometheus.NewCounter(prometheus.CounterOpts{Name: metrics.MetricNameSubmissionFailures, Help: "h"})
	results := prometheus.NewHistogram(prometheus.HistogramOpts{Name: metrics.MetricNameSearchResults, Help: "h", Buckets: metrics.SearchResultBuckets})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: metrics.MetricNameHTTPRequestDuration, Help: "h", Buckets: metrics.HTTPLatencyBuckets},
		[]string{metrics.LabelMethod, metrics.LabelPath})
	reg.MustRegister(posted, failures, results, latency)

	posted.WithLabelValues("toys", "good").Add(2)
	posted.WithLabelValues("toys", "new").Inc()
	posted.WithLabelValues("books", "fair").Inc()
	failures.Inc()
	results.Observe(4)
	results.Observe(10)
	for i := 0; i < 19; i++ {
		latency.WithLabelValues("GET", "/a").Observe(0.004)
	}
	latency.WithLabelValues("POST", "/b").Observe(2)

	w := httptest.NewRecorder()
	NewAdminMetricsHandler(reg).HandleGetMetrics(w, httptest.NewRequest("GET", "/api/v1/admin/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp AdminMetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 3.0, resp.Marketplace.ListingsPostedByCategory["toys"])
	assert.Equal(t, 1.0, resp.Marketplace.ListingsPostedByCategory["books"])
	assert.Equal(t, 1.0, resp.Marketplace.SubmissionFailures)
	assert.InDelta(t, 7.0, resp.Marketplace.AvgResultsPerSearch, 0.001)
	// 19 of 20 samples fall in the 5ms bucket
	assert.InDelta(t, 5.0, resp.HTTP.P95LatencyMs, 0.001)
}

func TestEstimateQuantile_Empty(t *testing.T) {
	assert.Zero(t, estimateQuantile(mergeHistograms(nil), 0.95))
}
