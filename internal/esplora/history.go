package esplora

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

// ConfirmedPageSize is the number of confirmed transactions the service returns per history page.
const ConfirmedPageSize = 25

// HistoryCollector reconstructs the full history of a script from paginated responses.
type HistoryCollector struct {
	pager   HistoryPager
	retrier *Retrier
}

// NewHistoryCollector builds a collector fetching every page through the retrier.
func NewHistoryCollector(pager HistoryPager, retrier *Retrier) *HistoryCollector {
	return &HistoryCollector{
		pager:   pager,
		retrier: retrier,
	}
}

// Collect returns every transaction touching script, in the order the service returns them.
// Paging stops at the first page holding fewer than ConfirmedPageSize confirmed entries, so a
// history that is an exact multiple of the page size costs one extra, empty, page.
func (c *HistoryCollector) Collect(ctx context.Context, script model.Script) ([]*model.TxRecord, error) {
	var (
		history  []*model.TxRecord
		lastSeen *chainhash.Hash
	)
	for {
		page, err := Do(ctx, c.retrier, "scripthash_txs", func(ctx context.Context) ([]*model.TxRecord, error) {
			return c.pager.ScriptHashTxs(ctx, script, lastSeen)
		})
		if err != nil {
			return nil, fmt.Errorf("script %s history: %w", script.Hash(), err)
		}

		confirmed := 0
		for _, record := range page {
			if record.Status.Confirmed {
				confirmed++
			}
		}
		history = append(history, page...)

		if confirmed < ConfirmedPageSize {
			return history, nil
		}
		last := page[len(page)-1].Txid
		lastSeen = &last
	}
}
