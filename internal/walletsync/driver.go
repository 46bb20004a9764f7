package walletsync

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/syncplan"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/workerpool"
)

// driver fulfils sync requests until the plan finishes. It is used for a single sync.
type driver struct {
	collector   HistoryCollector
	workerCount int
	index       txIndex
	metrics     Metrics
	logger      *zap.Logger
}

func newDriver(collector HistoryCollector, workerCount int, metrics Metrics, logger *zap.Logger) *driver {
	return &driver{
		collector:   collector,
		workerCount: workerCount,
		index:       make(txIndex),
		metrics:     metrics,
		logger:      logger,
	}
}

func (d *driver) run(ctx context.Context, req syncplan.Request) (*model.BatchUpdate, error) {
	for {
		var (
			next  syncplan.Request
			items int
			err   error
		)
		started := time.Now()

		switch r := req.(type) {
		case *syncplan.ScriptRequest:
			items = r.Len()
			next, err = d.scripts(ctx, r)
		case *syncplan.ConftimeRequest:
			items = r.Len()
			next, err = d.conftimes(r)
		case *syncplan.TxRequest:
			items = r.Len()
			next, err = d.transactions(r)
		case *syncplan.FinishRequest:
			return r.Batch(), nil
		default:
			panic(fmt.Sprintf("unexpected sync request %T", req))
		}

		d.observeStage(req.Stage(), items, err, started)
		if err != nil {
			return nil, fmt.Errorf("%s stage: %w", req.Stage(), err)
		}
		d.logger.Debug("stage satisfied",
			zap.Stringer("stage", req.Stage()),
			zap.Int("items", items))
		req = next
	}
}

func (d *driver) scripts(ctx context.Context, r *syncplan.ScriptRequest) (syncplan.Request, error) {
	histories, err := workerpool.Map(ctx, d.workerCount, slices.Collect(r.Scripts()), d.collector.Collect)
	if err != nil {
		return nil, err
	}

	refs := make([][]model.TxRef, len(histories))
	for i, history := range histories {
		refs[i] = make([]model.TxRef, 0, len(history))
		for _, record := range history {
			d.index.insert(record)
			refs[i] = append(refs[i], record.Ref())
		}
	}
	return r.Satisfy(refs)
}

func (d *driver) conftimes(r *syncplan.ConftimeRequest) (syncplan.Request, error) {
	conftimes := make([]*model.ConfTime, 0, r.Len())
	for txid := range r.Txids() {
		conftimes = append(conftimes, d.index.mustGet(txid).ConfTime())
	}
	return r.Satisfy(conftimes)
}

func (d *driver) transactions(r *syncplan.TxRequest) (syncplan.Request, error) {
	txs := make([]model.FullTx, 0, r.Len())
	for txid := range r.Txids() {
		record := d.index.mustGet(txid)
		txs = append(txs, model.FullTx{
			Prevouts: record.Prevouts(),
			Tx:       record.Materialize(),
		})
	}
	return r.Satisfy(txs)
}

func (d *driver) observeStage(stage syncplan.Stage, items int, err error, started time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveStage(stage.String(), items, err, started)
}
