package syncplan

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

// ErrInvalidStopGap is returned for a non-positive stop gap.
var ErrInvalidStopGap = errors.New("stop gap must be positive")

// View is the read side of the wallet database the planner needs.
type View interface {
	ScriptPubKey(keychain model.Keychain, index uint32) (model.Script, error)
	HasTransaction(txid chainhash.Hash) (bool, error)
	Txids() ([]chainhash.Hash, error)
}

// Planner implements gap-limit discovery: scripts of each keychain are requested in windows
// until stopGap consecutive scripts have no history.
type Planner struct {
	view    View
	stopGap int

	keychain  int
	nextIndex uint32
	unused    int

	discovered []chainhash.Hash
	seen       map[chainhash.Hash]struct{}
	conftimes  map[chainhash.Hash]*model.ConfTime
	batch      *model.BatchUpdate
}

// New builds a planner reading wallet state from view.
func New(view View, stopGap int) (*Planner, error) {
	if stopGap <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStopGap, stopGap)
	}
	return &Planner{
		view:      view,
		stopGap:   stopGap,
		seen:      make(map[chainhash.Hash]struct{}),
		conftimes: make(map[chainhash.Hash]*model.ConfTime),
		batch: &model.BatchUpdate{
			LastUsed: make(map[model.Keychain]uint32),
		},
	}, nil
}

// Start returns the first request of the sync.
func (p *Planner) Start() (Request, error) {
	return p.scripts()
}

func (p *Planner) scripts() (Request, error) {
	if p.keychain >= len(model.Keychains) {
		return p.conftime(), nil
	}
	keychain := model.Keychains[p.keychain]

	want := p.stopGap - p.unused
	if remaining := hdkeychain.HardenedKeyStart - p.nextIndex; uint32(want) > remaining {
		want = int(remaining)
	}
	if want <= 0 {
		p.nextKeychain()
		return p.scripts()
	}

	start := p.nextIndex
	scripts := make([]model.Script, 0, want)
	for i := 0; i < want; i++ {
		script, err := p.view.ScriptPubKey(keychain, start+uint32(i))
		if err != nil {
			return nil, fmt.Errorf("derive %s script %d: %w", keychain, start+uint32(i), err)
		}
		scripts = append(scripts, script)
	}

	return NewScriptRequest(scripts, func(histories [][]model.TxRef) (Request, error) {
		for i, history := range histories {
			if len(history) == 0 {
				p.unused++
				continue
			}
			p.unused = 0
			p.batch.LastUsed[keychain] = start + uint32(i)
			for _, ref := range history {
				p.discover(ref.Txid)
			}
		}
		p.nextIndex = start + uint32(len(histories))
		if p.unused >= p.stopGap {
			p.nextKeychain()
		}
		return p.scripts()
	}), nil
}

func (p *Planner) nextKeychain() {
	p.keychain++
	p.nextIndex = 0
	p.unused = 0
}

func (p *Planner) discover(txid chainhash.Hash) {
	if _, ok := p.seen[txid]; ok {
		return
	}
	p.seen[txid] = struct{}{}
	p.discovered = append(p.discovered, txid)
}

func (p *Planner) conftime() Request {
	txids := p.discovered
	return NewConftimeRequest(txids, func(conftimes []*model.ConfTime) (Request, error) {
		p.batch.ConfTimes = make([]model.ConfTimeUpdate, 0, len(txids))
		for i, txid := range txids {
			p.conftimes[txid] = conftimes[i]
			p.batch.ConfTimes = append(p.batch.ConfTimes, model.ConfTimeUpdate{
				Txid:     txid,
				ConfTime: conftimes[i],
			})
		}
		return p.transactions()
	})
}

func (p *Planner) transactions() (Request, error) {
	missing := make([]chainhash.Hash, 0, len(p.discovered))
	for _, txid := range p.discovered {
		known, err := p.view.HasTransaction(txid)
		if err != nil {
			return nil, fmt.Errorf("lookup tx %s: %w", txid, err)
		}
		if !known {
			missing = append(missing, txid)
		}
	}

	return NewTxRequest(missing, func(txs []model.FullTx) (Request, error) {
		p.batch.Transactions = make([]model.WalletTx, 0, len(missing))
		for i, txid := range missing {
			p.batch.Transactions = append(p.batch.Transactions, model.WalletTx{
				Txid:     txid,
				Tx:       txs[i].Tx,
				Prevouts: txs[i].Prevouts,
				ConfTime: p.conftimes[txid],
			})
		}
		return p.finish()
	}), nil
}

func (p *Planner) finish() (Request, error) {
	stored, err := p.view.Txids()
	if err != nil {
		return nil, fmt.Errorf("list stored txs: %w", err)
	}
	for _, txid := range stored {
		if _, ok := p.seen[txid]; !ok {
			p.batch.Removed = append(p.batch.Removed, txid)
		}
	}
	return NewFinishRequest(p.batch), nil
}
