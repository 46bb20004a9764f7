package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	retrierRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "esplora_retrier",
		Name:      "rate_limited_total",
		Help:      "Count of calls answered with HTTP 429 and retried.",
	}, []string{"operation", "network"})
	retrierBackoffSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "esplora_retrier",
		Name:      "backoff_seconds",
		Help:      "Backoff waited before retrying a rate-limited call.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 6), // 1..32
	}, []string{"operation", "network"})
)

// Retrier tracks rate-limit backoffs.
type Retrier struct {
	network string
}

func NewRetrier(network string) *Retrier {
	if network == "" {
		network = "unknown"
	}
	return &Retrier{network: network}
}

// ObserveRateLimited records one backoff of wait before retrying operation.
func (m Retrier) ObserveRateLimited(operation string, wait time.Duration) {
	retrierRateLimitedTotal.WithLabelValues(operation, m.network).Inc()
	retrierBackoffSeconds.WithLabelValues(operation, m.network).Observe(wait.Seconds())
}
