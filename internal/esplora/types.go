package esplora

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RequestMetrics records metrics for HTTP calls to the service.
	RequestMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// RetryMetrics records rate-limit backoffs.
	RetryMetrics interface {
		ObserveRateLimited(operation string, wait time.Duration)
	}
	// HistoryPager returns one page of a script's transaction history.
	HistoryPager interface {
		ScriptHashTxs(ctx context.Context, script model.Script, lastSeen *chainhash.Hash) ([]*model.TxRecord, error)
	}
)
