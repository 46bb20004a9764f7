// Package wallet joins script derivation and transaction storage into the database a sync runs against.
package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

type scriptKey struct {
	keychain model.Keychain
	index    uint32
}

// Wallet is a single-account wallet: scripts come from a Deriver, history from a Store.
type Wallet struct {
	deriver Deriver
	store   Store
	logger  *zap.Logger

	mu      sync.Mutex
	scripts map[scriptKey]model.Script
}

// New builds a Wallet.
func New(deriver Deriver, store Store, logger *zap.Logger) *Wallet {
	return &Wallet{
		deriver: deriver,
		store:   store,
		logger:  logger.Named("wallet"),
		scripts: make(map[scriptKey]model.Script),
	}
}

// ScriptPubKey returns the script at index of keychain. Derived scripts are cached.
func (w *Wallet) ScriptPubKey(keychain model.Keychain, index uint32) (model.Script, error) {
	key := scriptKey{keychain: keychain, index: index}

	w.mu.Lock()
	defer w.mu.Unlock()
	if script, ok := w.scripts[key]; ok {
		return script, nil
	}
	script, err := w.deriver.ScriptPubKey(keychain, index)
	if err != nil {
		return nil, err
	}
	w.scripts[key] = script
	return script, nil
}

func (w *Wallet) HasTransaction(txid chainhash.Hash) (bool, error) {
	return w.store.HasTransaction(txid)
}

func (w *Wallet) Txids() ([]chainhash.Hash, error) {
	return w.store.Txids()
}

// Transaction returns a stored transaction, or nil if the wallet does not have it.
func (w *Wallet) Transaction(txid chainhash.Hash) (*model.WalletTx, error) {
	return w.store.Transaction(txid)
}

// LastUsed returns the highest used index per keychain.
func (w *Wallet) LastUsed() (map[model.Keychain]uint32, error) {
	return w.store.LastUsed()
}

// CommitBatch stores a sync result.
func (w *Wallet) CommitBatch(ctx context.Context, batch *model.BatchUpdate) error {
	if err := w.store.CommitBatch(ctx, batch); err != nil {
		return err
	}
	for keychain, index := range batch.LastUsed {
		w.logger.Info("last used index",
			zap.Stringer("keychain", keychain),
			zap.Uint32("index", index))
	}
	return nil
}

// Balance sums the stored outputs paying to scripts derived up to the last used index
// and not spent by another stored transaction.
func (w *Wallet) Balance() (confirmed, unconfirmed int64, err error) {
	owned, err := w.ownedScripts()
	if err != nil {
		return 0, 0, err
	}
	txids, err := w.store.Txids()
	if err != nil {
		return 0, 0, fmt.Errorf("list transactions: %w", err)
	}

	txs := make([]*model.WalletTx, 0, len(txids))
	spent := make(map[chainhash.Hash]map[uint32]struct{})
	for _, txid := range txids {
		tx, err := w.store.Transaction(txid)
		if err != nil {
			return 0, 0, fmt.Errorf("load tx %s: %w", txid, err)
		}
		if tx == nil {
			continue
		}
		txs = append(txs, tx)
		for _, in := range tx.Tx.TxIn {
			prev := in.PreviousOutPoint
			if spent[prev.Hash] == nil {
				spent[prev.Hash] = make(map[uint32]struct{})
			}
			spent[prev.Hash][prev.Index] = struct{}{}
		}
	}

	for _, tx := range txs {
		for vout, out := range tx.Tx.TxOut {
			if _, ok := owned[string(out.PkScript)]; !ok {
				continue
			}
			if _, ok := spent[tx.Txid][uint32(vout)]; ok {
				continue
			}
			if tx.ConfTime != nil {
				confirmed += out.Value
			} else {
				unconfirmed += out.Value
			}
		}
	}
	return confirmed, unconfirmed, nil
}

func (w *Wallet) ownedScripts() (map[string]struct{}, error) {
	last, err := w.store.LastUsed()
	if err != nil {
		return nil, fmt.Errorf("load last used indices: %w", err)
	}
	owned := make(map[string]struct{})
	for keychain, lastIndex := range last {
		for i := uint32(0); i <= lastIndex; i++ {
			script, err := w.ScriptPubKey(keychain, i)
			if err != nil {
				return nil, fmt.Errorf("derive %s script %d: %w", keychain, i, err)
			}
			owned[string(script)] = struct{}{}
		}
	}
	return owned, nil
}
