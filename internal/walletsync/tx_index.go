package walletsync

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

// txIndex holds every record fetched during script discovery of one sync.
type txIndex map[chainhash.Hash]*model.TxRecord

func (idx txIndex) insert(record *model.TxRecord) {
	idx[record.Txid] = record
}

// mustGet panics if txid was not discovered: later stages only ever ask for txids
// reported during discovery, so a miss is a broken plan rather than a remote failure.
func (idx txIndex) mustGet(txid chainhash.Hash) *model.TxRecord {
	record, ok := idx[txid]
	if !ok {
		panic(fmt.Sprintf("invariant violation: tx %s requested but never discovered", txid))
	}
	return record
}
