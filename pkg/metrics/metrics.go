// Package metrics defines the Prometheus metric collectors used across the
// service and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	InterviewsStarted    prometheus.Counter
	AnswersEvaluated     *prometheus.CounterVec
	OverallScore         prometheus.Histogram
	EvaluationDuration   prometheus.Histogram
	RetrievalRatio       prometheus.Histogram
	RetrievalMisses      prometheus.Counter
	MatchCacheHits       prometheus.Counter
	MatchCacheMisses     prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		InterviewsStarted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "interviews_started_total",
				Help: "Total number of interview sessions started.",
			},
		),
		AnswersEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "answers_evaluated_total",
				Help: "Total answers evaluated by branch (no_answer, no_reference, full).",
			},
			[]string{"branch"},
		),
		OverallScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "answer_overall_score",
				Help:    "Distribution of blended overall scores.",
				Buckets: []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5},
			},
		),
		EvaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "evaluation_duration_seconds",
				Help:    "Time spent in retrieval plus evaluation per answer.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),
		RetrievalRatio: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "retrieval_best_ratio",
				Help:    "Best similarity ratio found per reference lookup.",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
			},
		),
		RetrievalMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "retrieval_misses_total",
				Help: "Lookups where no corpus question cleared the similarity floor.",
			},
		),
		MatchCacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "match_cache_hits_total",
				Help: "Total number of reference-match cache hits.",
			},
		),
		MatchCacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "match_cache_misses_total",
				Help: "Total number of reference-match cache misses.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.InterviewsStarted,
		m.AnswersEvaluated,
		m.OverallScore,
		m.EvaluationDuration,
		m.RetrievalRatio,
		m.RetrievalMisses,
		m.MatchCacheHits,
		m.MatchCacheMisses,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
