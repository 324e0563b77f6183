// Package metrics registers the Prometheus collectors for the HTTP layer and the marketplace events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal    = counterVec(MetricNameHTTPRequestsTotal, HelpTextHTTPRequestsTotal, LabelMethod, LabelPath, LabelStatus)
	HTTPRequestDuration  = histogramVec(MetricNameHTTPRequestDuration, HelpTextHTTPRequestDuration, HTTPLatencyBuckets, LabelMethod, LabelPath)
	HTTPRequestsInFlight = gauge(MetricNameHTTPRequestsInFlight, HelpTextHTTPRequestsInFlight)
)

var (
	EventsPublished    = counterVec(MetricNameEventsPublished, HelpTextEventsPublished, LabelType)
	EventHandlerErrors = counterVec(MetricNameEventHandlerErrors, HelpTextEventHandlerErrors, LabelType)
)

var (
	ListingsPosted      = counterVec(MetricNameListingsPosted, HelpTextListingsPosted, LabelCategory, LabelCondition)
	SubmissionFailures  = counter(MetricNameSubmissionFailures, HelpTextSubmissionFailures)
	SearchesPerformed   = counter(MetricNameSearchesPerformed, HelpTextSearchesPerformed)
	SearchResults       = histogram(MetricNameSearchResults, HelpTextSearchResults, SearchResultBuckets)
	AccountsRegistered  = counterVec(MetricNameAccountsRegistered, HelpTextAccountsRegistered, LabelRole)
	DraftSessionsActive = gauge(MetricNameDraftSessionsActive, HelpTextDraftSessionsActive)
)

func counter(name, help string) prometheus.Counter {
	return promauto.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
}

func counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
}

func gauge(name, help string) prometheus.Gauge {
	return promauto.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
}

func histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.NewHistogram(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets})
}

func histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
}
