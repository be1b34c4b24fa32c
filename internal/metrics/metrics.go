package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranscriptRequests counts transcript lookups by outcome
	// (success, bad_request, not_found, disabled, unavailable, internal).
	TranscriptRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcript_requests_total",
		Help: "Total transcript lookups by outcome",
	}, []string{"outcome"})

	// UpstreamDuration tracks time spent in calls to YouTube.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transcript_upstream_duration_seconds",
		Help:    "Latency of YouTube calls by operation",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"op"})
)

// IncTranscriptRequest records one lookup outcome.
func IncTranscriptRequest(outcome string) {
	TranscriptRequests.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records the time elapsed since start for op.
func ObserveUpstream(op string, start time.Time) {
	UpstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
