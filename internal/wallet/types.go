package wallet

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Deriver derives the wallet's output scripts.
	Deriver interface {
		ScriptPubKey(keychain model.Keychain, index uint32) (model.Script, error)
	}
	// Store persists the wallet's transactions.
	Store interface {
		HasTransaction(txid chainhash.Hash) (bool, error)
		Txids() ([]chainhash.Hash, error)
		Transaction(txid chainhash.Hash) (*model.WalletTx, error)
		LastUsed() (map[model.Keychain]uint32, error)
		CommitBatch(ctx context.Context, batch *model.BatchUpdate) error
	}
)
