package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_sync",
		Name:      "syncs_total",
		Help:      "Count of wallet syncs.",
	}, []string{"network", "status"})

	walletSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_sync",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a full wallet sync.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})

	walletSyncStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_sync",
		Name:      "stages_total",
		Help:      "Count of satisfied sync stages.",
	}, []string{"network", "stage", "status"})

	walletSyncStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_sync",
		Name:      "stage_duration_seconds",
		Help:      "Duration of a single sync stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "stage", "status"})

	walletSyncStageItems = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_sync",
		Name:      "stage_items",
		Help:      "Number of scripts or transactions handled per stage.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network", "stage"})
)

// WalletSync tracks metrics for wallet syncs and their stages.
type WalletSync struct {
	network string
}

// NewWalletSync constructs a WalletSync with defaults.
func NewWalletSync(network string) *WalletSync {
	if network == "" {
		network = "unknown"
	}
	return &WalletSync{network: network}
}

// ObserveSync records the outcome and duration of a sync.
func (m WalletSync) ObserveSync(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	walletSyncTotal.WithLabelValues(m.network, status).Inc()
	walletSyncDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveStage records one stage of a sync.
func (m WalletSync) ObserveStage(stage string, items int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	walletSyncStageTotal.WithLabelValues(m.network, stage, status).Inc()
	walletSyncStageDuration.WithLabelValues(m.network, stage, status).
		Observe(time.Since(started).Seconds())
	walletSyncStageItems.WithLabelValues(m.network, stage).Observe(float64(items))
}
