// Package metrics exposes the Prometheus instrumentation for the
// pipeline. Both binaries serve these on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RunsTotal counts pipeline invocations by terminal status.
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overlay_runs_total",
		Help: "Pipeline invocations by status (succeeded, failed, skipped).",
	}, []string{"status"})

	// OpsEmitted counts mutation operations emitted per overlay family,
	// plus deletions under the "delete" family.
	OpsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overlay_ops_total",
		Help: "Mutation operations emitted, by overlay family.",
	}, []string{"family"})

	// BatchSubmitSeconds observes the latency of the single batch
	// submission per run.
	BatchSubmitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "overlay_batch_submit_seconds",
		Help:    "Latency of the apply-mutations call.",
		Buckets: prometheus.DefBuckets,
	})
)

// Run status label values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
