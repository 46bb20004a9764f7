package walletsync

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/syncplan"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Remote is the block explorer service.
	Remote interface {
		ScriptHashTxs(ctx context.Context, script model.Script, lastSeen *chainhash.Hash) ([]*model.TxRecord, error)
		Tx(ctx context.Context, txid chainhash.Hash) (*model.TxRecord, error)
		Height(ctx context.Context) (uint32, error)
		BlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error)
		FeeEstimates(ctx context.Context) (map[uint16]float64, error)
		Broadcast(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error)
	}
	// Database is the wallet store a sync reads from and commits to.
	Database interface {
		ScriptPubKey(keychain model.Keychain, index uint32) (model.Script, error)
		HasTransaction(txid chainhash.Hash) (bool, error)
		Txids() ([]chainhash.Hash, error)
		CommitBatch(ctx context.Context, batch *model.BatchUpdate) error
	}
	// Plan produces the stages of one sync.
	Plan interface {
		Start() (syncplan.Request, error)
	}
	// HistoryCollector returns the complete history of a script.
	HistoryCollector interface {
		Collect(ctx context.Context, script model.Script) ([]*model.TxRecord, error)
	}
	Metrics interface {
		ObserveSync(err error, started time.Time)
		ObserveStage(stage string, items int, err error, started time.Time)
	}
)
