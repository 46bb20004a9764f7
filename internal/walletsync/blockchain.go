// Package walletsync synchronizes a wallet's transaction history against an Esplora service.
package walletsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/esplora"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/syncplan"
)

const (
	defaultConcurrency = 4
	// defaultFeeRate in sat/vB is used when no estimate covers the requested target.
	defaultFeeRate = 1.0
)

var (
	// ErrCommit wraps failures of the database commit that ends a sync.
	ErrCommit = errors.New("commit wallet batch")
	// ErrInvalidConfig is returned by New for unusable settings.
	ErrInvalidConfig = errors.New("invalid wallet sync config")
)

// Capability is a feature the blockchain backend offers to the wallet.
type Capability uint8

const (
	FullHistory Capability = iota
	GetAnyTx
	AccurateFees
)

func (c Capability) String() string {
	switch c {
	case FullHistory:
		return "full_history"
	case GetAnyTx:
		return "get_any_tx"
	case AccurateFees:
		return "accurate_fees"
	default:
		return fmt.Sprintf("capability(%d)", uint8(c))
	}
}

// Config tunes a Blockchain.
type Config struct {
	// StopGap is the number of consecutive unused scripts that ends discovery on a keychain.
	StopGap int
	// Concurrency bounds the script histories fetched in parallel; zero selects a default.
	Concurrency int
}

// Blockchain syncs wallets against a remote Esplora service and exposes single-call lookups.
type Blockchain struct {
	remote      Remote
	retrier     *esplora.Retrier
	collector   HistoryCollector
	stopGap     int
	concurrency int
	newPlan     func(view syncplan.View, stopGap int) (Plan, error)
	metrics     Metrics
	logger      *zap.Logger
}

// New builds a Blockchain. Every remote call goes through retrier.
func New(remote Remote, retrier *esplora.Retrier, cfg Config, metrics Metrics, logger *zap.Logger) (*Blockchain, error) {
	if cfg.StopGap <= 0 {
		return nil, fmt.Errorf("%w: stop gap %d", ErrInvalidConfig, cfg.StopGap)
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("%w: concurrency %d", ErrInvalidConfig, cfg.Concurrency)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = defaultConcurrency
	}

	return &Blockchain{
		remote:      remote,
		retrier:     retrier,
		collector:   esplora.NewHistoryCollector(remote, retrier),
		stopGap:     cfg.StopGap,
		concurrency: cfg.Concurrency,
		newPlan: func(view syncplan.View, stopGap int) (Plan, error) {
			return syncplan.New(view, stopGap)
		},
		metrics: metrics,
		logger:  logger.Named("walletsync"),
	}, nil
}

// Capabilities lists what the backend supports.
func (b *Blockchain) Capabilities() []Capability {
	return []Capability{FullHistory, GetAnyTx, AccurateFees}
}

// Sync discovers the wallet's full history and commits it to db in one batch.
// Nothing is committed unless every remote call succeeded.
func (b *Blockchain) Sync(ctx context.Context, db Database) (err error) {
	started := time.Now()
	defer func() {
		if b.metrics != nil {
			b.metrics.ObserveSync(err, started)
		}
	}()

	plan, err := b.newPlan(db, b.stopGap)
	if err != nil {
		return fmt.Errorf("build sync plan: %w", err)
	}
	req, err := plan.Start()
	if err != nil {
		return fmt.Errorf("start sync plan: %w", err)
	}

	d := newDriver(b.collector, b.concurrency, b.metrics, b.logger)
	batch, err := d.run(ctx, req)
	if err != nil {
		b.logger.Error("sync failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return err
	}

	if err := db.CommitBatch(ctx, batch); err != nil {
		b.logger.Error("commit failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}

	b.logger.Info("sync complete",
		zap.Int("discovered", len(d.index)),
		zap.Int("new_transactions", len(batch.Transactions)),
		zap.Int("removed", len(batch.Removed)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// Tx returns the transaction with the given id, or nil if the service does not know it.
func (b *Blockchain) Tx(ctx context.Context, txid chainhash.Hash) (*wire.MsgTx, error) {
	record, err := esplora.Do(ctx, b.retrier, "tx", func(ctx context.Context) (*model.TxRecord, error) {
		return b.remote.Tx(ctx, txid)
	})
	if err != nil {
		return nil, fmt.Errorf("get tx %s: %w", txid, err)
	}
	if record == nil {
		return nil, nil
	}
	return record.Materialize(), nil
}

// Height returns the current chain tip height.
func (b *Blockchain) Height(ctx context.Context) (uint32, error) {
	height, err := esplora.Do(ctx, b.retrier, "tip_height", b.remote.Height)
	if err != nil {
		return 0, fmt.Errorf("get tip height: %w", err)
	}
	return height, nil
}

// BlockHash returns the hash of the block at height.
func (b *Blockchain) BlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error) {
	hash, err := esplora.Do(ctx, b.retrier, "block_hash", func(ctx context.Context) (*chainhash.Hash, error) {
		return b.remote.BlockHash(ctx, height)
	})
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}

// Broadcast submits tx to the network.
func (b *Blockchain) Broadcast(ctx context.Context, tx *wire.MsgTx) error {
	txid, err := esplora.Do(ctx, b.retrier, "broadcast", func(ctx context.Context) (*chainhash.Hash, error) {
		return b.remote.Broadcast(ctx, tx)
	})
	if err != nil {
		return fmt.Errorf("broadcast tx %s: %w", tx.TxHash(), err)
	}
	b.logger.Info("transaction broadcast", zap.Stringer("txid", txid))
	return nil
}

// EstimateFee returns the fee rate in sat/vB for confirmation within target blocks.
func (b *Blockchain) EstimateFee(ctx context.Context, target uint16) (float64, error) {
	estimates, err := esplora.Do(ctx, b.retrier, "fee_estimates", b.remote.FeeEstimates)
	if err != nil {
		return 0, fmt.Errorf("get fee estimates: %w", err)
	}
	return feeRateForTarget(estimates, target), nil
}

// feeRateForTarget picks the estimate of the largest target not above the requested one.
func feeRateForTarget(estimates map[uint16]float64, target uint16) float64 {
	rate, best, found := defaultFeeRate, uint16(0), false
	for blocks, r := range estimates {
		if blocks > target {
			continue
		}
		if !found || blocks > best {
			rate, best, found = r, blocks, true
		}
	}
	return rate
}
