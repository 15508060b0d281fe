package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PublishTotal counts successful publish RPCs per topic.
	PublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventstore_publish_total",
			Help: "Total number of events published, by topic",
		},
		[]string{"topic"},
	)

	// PublishDuration tracks how long a publish RPC takes end to end,
	// including the round trip to the stream store backend.
	PublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventstore_publish_duration_seconds",
			Help:    "Publish RPC duration in seconds, by topic",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	// ActiveSubscriptions reports the current number of open subscribe
	// streams across all topics.
	ActiveSubscriptions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventstore_active_subscriptions",
			Help: "Number of currently active subscribe streams",
		},
	)

	// FollowBatchSize records how many entries a single follow iteration
	// delivered, a proxy for how bursty publish traffic is relative to the
	// block window.
	FollowBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventstore_follow_batch_size",
			Help:    "Number of entries delivered per follow loop iteration",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// HandlerFaultsTotal counts panics recovered in the server's subscribe
	// handler. Client-side handler panics are logged by pkg/client only.
	HandlerFaultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "eventstore_handler_faults_total",
			Help: "Total number of subscription handler panics recovered",
		},
	)
)

func init() {
	prometheus.MustRegister(PublishTotal)
	prometheus.MustRegister(PublishDuration)
	prometheus.MustRegister(ActiveSubscriptions)
	prometheus.MustRegister(FollowBatchSize)
	prometheus.MustRegister(HandlerFaultsTotal)
}

// Handler returns the Prometheus HTTP handler for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed duration to a histogram vec with
// labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
