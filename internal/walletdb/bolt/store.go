// Package bolt stores wallet transactions in a bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

var (
	transactionsBucket = []byte("transactions")
	confTimesBucket    = []byte("conftimes")
	lastIndexBucket    = []byte("last_index")
)

// ErrCorrupt is returned when a stored value cannot be decoded.
var ErrCorrupt = errors.New("corrupt wallet record")

// Metrics records wallet database operations.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Store is a wallet database backed by bbolt.
type Store struct {
	db      *bbolt.DB
	metrics Metrics
	logger  *zap.Logger
}

// Open opens or creates the wallet file at path.
func Open(path string, metrics Metrics, logger *zap.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open wallet db %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{transactionsBucket, confTimesBucket, lastIndexBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, metrics: metrics, logger: logger.Named("walletdb")}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// HasTransaction reports whether the full transaction is stored.
func (s *Store) HasTransaction(txid chainhash.Hash) (found bool, err error) {
	defer s.observe("has_transaction", time.Now(), &err)

	err = s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(transactionsBucket).Get(txid[:]) != nil
		return nil
	})
	return found, err
}

// Txids lists every stored transaction.
func (s *Store) Txids() (txids []chainhash.Hash, err error) {
	defer s.observe("txids", time.Now(), &err)

	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(transactionsBucket).ForEach(func(k, _ []byte) error {
			txid, err := chainhash.NewHash(k)
			if err != nil {
				return fmt.Errorf("%w: key %x: %w", ErrCorrupt, k, err)
			}
			txids = append(txids, *txid)
			return nil
		})
	})
	return txids, err
}

// Transaction returns a stored transaction, or nil if it is unknown.
func (s *Store) Transaction(txid chainhash.Hash) (wtx *model.WalletTx, err error) {
	defer s.observe("transaction", time.Now(), &err)

	err = s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(transactionsBucket).Get(txid[:])
		if data == nil {
			return nil
		}
		msg, prevouts, err := decodeTx(data)
		if err != nil {
			return fmt.Errorf("%w: tx %s: %w", ErrCorrupt, txid, err)
		}
		wtx = &model.WalletTx{Txid: txid, Tx: msg, Prevouts: prevouts}

		if data := tx.Bucket(confTimesBucket).Get(txid[:]); data != nil {
			if wtx.ConfTime, err = decodeConfTime(data); err != nil {
				return fmt.Errorf("%w: conftime %s: %w", ErrCorrupt, txid, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wtx, nil
}

// LastUsed returns the highest used index per keychain.
func (s *Store) LastUsed() (last map[model.Keychain]uint32, err error) {
	defer s.observe("last_used", time.Now(), &err)

	last = make(map[model.Keychain]uint32)
	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(lastIndexBucket).ForEach(func(k, v []byte) error {
			if len(k) != 1 || len(v) != 4 {
				return fmt.Errorf("%w: last index %x", ErrCorrupt, k)
			}
			last[model.Keychain(k[0])] = binary.BigEndian.Uint32(v)
			return nil
		})
	})
	return last, err
}

// CommitBatch applies a sync result in a single transaction: either all of it is stored or none.
func (s *Store) CommitBatch(ctx context.Context, batch *model.BatchUpdate) (err error) {
	defer s.observe("commit_batch", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		txs := tx.Bucket(transactionsBucket)
		confTimes := tx.Bucket(confTimesBucket)

		for i := range batch.Transactions {
			wtx := &batch.Transactions[i]
			data, err := encodeTx(wtx)
			if err != nil {
				return err
			}
			if err := txs.Put(wtx.Txid[:], data); err != nil {
				return fmt.Errorf("put tx %s: %w", wtx.Txid, err)
			}
			if err := putConfTime(confTimes, wtx.Txid, wtx.ConfTime); err != nil {
				return err
			}
		}
		for _, update := range batch.ConfTimes {
			if err := putConfTime(confTimes, update.Txid, update.ConfTime); err != nil {
				return err
			}
		}
		for _, txid := range batch.Removed {
			if err := txs.Delete(txid[:]); err != nil {
				return fmt.Errorf("delete tx %s: %w", txid, err)
			}
			if err := confTimes.Delete(txid[:]); err != nil {
				return fmt.Errorf("delete conftime %s: %w", txid, err)
			}
		}

		lastIndex := tx.Bucket(lastIndexBucket)
		for keychain, index := range batch.LastUsed {
			if err := lastIndex.Put([]byte{byte(keychain)}, binary.BigEndian.AppendUint32(nil, index)); err != nil {
				return fmt.Errorf("put last index %s: %w", keychain, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	s.logger.Debug("batch committed",
		zap.Int("transactions", len(batch.Transactions)),
		zap.Int("conftimes", len(batch.ConfTimes)),
		zap.Int("removed", len(batch.Removed)))
	return nil
}

// putConfTime stores ct, or deletes the entry when ct is nil.
func putConfTime(b *bbolt.Bucket, txid chainhash.Hash, ct *model.ConfTime) error {
	if ct == nil {
		if err := b.Delete(txid[:]); err != nil {
			return fmt.Errorf("delete conftime %s: %w", txid, err)
		}
		return nil
	}
	data, err := encodeConfTime(ct)
	if err != nil {
		return fmt.Errorf("encode conftime %s: %w", txid, err)
	}
	if err := b.Put(txid[:], data); err != nil {
		return fmt.Errorf("put conftime %s: %w", txid, err)
	}
	return nil
}

func (s *Store) observe(operation string, started time.Time, err *error) {
	if s.metrics != nil {
		s.metrics.Observe(operation, *err, started)
	}
}
