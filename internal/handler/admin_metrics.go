package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/BabyBank_Go/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for the operations dashboard
type AdminMetricsResponse struct {
	HTTP        HTTPMetrics        `json:"http"`
	Events      EventMetrics       `json:"events"`
	Marketplace MarketplaceMetrics `json:"marketplace"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type EventMetrics struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
	HandlerErrorsByType  map[string]float64 `json:"handler_errors_by_type"`
}

type MarketplaceMetrics struct {
	ListingsPostedByCategory map[string]float64 `json:"listings_posted_by_category"`
	SubmissionFailures       float64            `json:"submission_failures"`
	SearchesPerformed        float64            `json:"searches_performed"`
	AvgResultsPerSearch      float64            `json:"avg_results_per_search"`
	AccountsByRole           map[string]float64 `json:"accounts_by_role"`
	DraftSessionsActive      float64            `json:"draft_sessions_active"`
}

// AdminMetricsHandler summarizes the Prometheus registry as JSON
type AdminMetricsHandler struct {
	gatherer prometheus.Gatherer
}

// NewAdminMetricsHandler creates a new admin metrics handler.
// A nil gatherer reads the default registry.
func NewAdminMetricsHandler(gatherer prometheus.Gatherer) *AdminMetricsHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &AdminMetricsHandler{gatherer: gatherer}
}

// HandleGetMetrics returns JSON-formatted metrics
// @Summary Operations metrics
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/metrics [get]
func (h *AdminMetricsHandler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	families, err := h.gatherer.Gather()
	if err != nil {
		respondServiceError(w, r, "Gather metrics", err)
		return
	}
	respondJSON(w, http.StatusOK, summarizeMetrics(families))
}

func summarizeMetrics(families []*dto.MetricFamily) *AdminMetricsResponse {
	resp := &AdminMetricsResponse{
		HTTP: HTTPMetrics{
			RequestsTotalByStatus: make(map[string]float64),
		},
		Events: EventMetrics{
			PublishedTotalByType: make(map[string]float64),
			HandlerErrorsByType:  make(map[string]float64),
		},
		Marketplace: MarketplaceMetrics{
			ListingsPostedByCategory: make(map[string]float64),
			AccountsByRole:           make(map[string]float64),
		},
	}

	for _, mf := range families {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumCountersByLabel(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			merged := mergeHistograms(mf)
			if merged.GetSampleCount() > 0 {
				resp.HTTP.AvgLatencyMs = merged.GetSampleSum() / float64(merged.GetSampleCount()) * 1000
				resp.HTTP.P95LatencyMs = estimateQuantile(merged, 0.95) * 1000
			}
		case metrics.MetricNameHTTPRequestsInFlight:
			for _, m := range mf.GetMetric() {
				resp.HTTP.InFlight += m.GetGauge().GetValue()
			}
		case metrics.MetricNameEventsPublished:
			sumCountersByLabel(mf, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameEventHandlerErrors:
			sumCountersByLabel(mf, metrics.LabelType, resp.Events.HandlerErrorsByType)
		case metrics.MetricNameListingsPosted:
			sumCountersByLabel(mf, metrics.LabelCategory, resp.Marketplace.ListingsPostedByCategory)
		case metrics.MetricNameSubmissionFailures:
			for _, m := range mf.GetMetric() {
				resp.Marketplace.SubmissionFailures += m.GetCounter().GetValue()
			}
		case metrics.MetricNameSearchesPerformed:
			for _, m := range mf.GetMetric() {
				resp.Marketplace.SearchesPerformed += m.GetCounter().GetValue()
			}
		case metrics.MetricNameSearchResults:
			merged := mergeHistograms(mf)
			if merged.GetSampleCount() > 0 {
				resp.Marketplace.AvgResultsPerSearch = merged.GetSampleSum() / float64(merged.GetSampleCount())
			}
		case metrics.MetricNameAccountsRegistered:
			sumCountersByLabel(mf, metrics.LabelRole, resp.Marketplace.AccountsByRole)
		case metrics.MetricNameDraftSessionsActive:
			for _, m := range mf.GetMetric() {
				resp.Marketplace.DraftSessionsActive += m.GetGauge().GetValue()
			}
		}
	}

	return resp
}

func sumCountersByLabel(mf *dto.MetricFamily, label string, into map[string]float64) {
	for _, m := range mf.GetMetric() {
		if v := getLabelValue(m, label); v != "" {
			into[v] += m.GetCounter().GetValue()
		}
	}
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// mergeHistograms adds up every labelled series of a histogram family.
// Series of one family share bucket bounds.
func mergeHistograms(mf *dto.MetricFamily) *dto.Histogram {
	var count uint64
	var sum float64
	var bounds []float64
	var cumulative []uint64

	for _, m := range mf.GetMetric() {
		hist := m.GetHistogram()
		if hist == nil {
			continue
		}
		count += hist.GetSampleCount()
		sum += hist.GetSampleSum()
		for i, b := range hist.GetBucket() {
			if i >= len(bounds) {
				bounds = append(bounds, b.GetUpperBound())
				cumulative = append(cumulative, 0)
			}
			cumulative[i] += b.GetCumulativeCount()
		}
	}

	merged := &dto.Histogram{SampleCount: &count, SampleSum: &sum}
	for i := range bounds {
		merged.Bucket = append(merged.Bucket, &dto.Bucket{
			UpperBound:      &bounds[i],
			CumulativeCount: &cumulative[i],
		})
	}
	return merged
}

// estimateQuantile approximates the given quantile from a histogram
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
