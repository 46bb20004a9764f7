package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletDBRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_db",
		Name:      "operations_total",
		Help:      "Count of wallet database operations.",
	}, []string{"operation", "status"})
	walletDBRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_db",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet database operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "status"})
)

// WalletDB tracks metrics for wallet database operations.
type WalletDB struct{}

// NewWalletDB creates a WalletDB metrics collector.
func NewWalletDB() *WalletDB {
	return &WalletDB{}
}

// Observe records duration and status of a database operation.
func (m WalletDB) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	walletDBRequestsTotal.WithLabelValues(operation, status).Inc()
	walletDBRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
