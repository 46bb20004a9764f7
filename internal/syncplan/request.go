// Package syncplan drives which data a wallet sync asks the remote service for.
//
// A sync is a fixed sequence of stages: one or more script requests, then a
// confirmation time request, then a transaction request, then finish. Each
// stage is a Request variant; the party doing the network work fulfils the
// request and calls Satisfy with a payload in request order to obtain the next
// stage.
package syncplan

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

// ErrPayloadLength is returned when a satisfaction payload does not match the request.
var ErrPayloadLength = errors.New("satisfaction payload length mismatch")

// Stage names the protocol stage of a Request.
type Stage uint8

const (
	StageScripts Stage = iota
	StageConftime
	StageTransactions
	StageFinish
)

func (s Stage) String() string {
	switch s {
	case StageScripts:
		return "scripts"
	case StageConftime:
		return "conftime"
	case StageTransactions:
		return "transactions"
	case StageFinish:
		return "finish"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Request is one stage of the protocol. The set of implementations is closed:
// *ScriptRequest, *ConftimeRequest, *TxRequest and *FinishRequest.
type Request interface {
	Stage() Stage
	sealed()
}

// ScriptRequest asks for the history of every script it yields.
type ScriptRequest struct {
	scripts []model.Script
	satisfy func([][]model.TxRef) (Request, error)
}

// NewScriptRequest builds a script request. satisfy receives one history per script, in order.
func NewScriptRequest(scripts []model.Script, satisfy func([][]model.TxRef) (Request, error)) *ScriptRequest {
	return &ScriptRequest{scripts: scripts, satisfy: satisfy}
}

func (*ScriptRequest) Stage() Stage { return StageScripts }
func (*ScriptRequest) sealed()      {}

// Len returns the number of scripts requested.
func (r *ScriptRequest) Len() int { return len(r.scripts) }

// Scripts yields the requested scripts in order.
func (r *ScriptRequest) Scripts() iter.Seq[model.Script] { return slices.Values(r.scripts) }

// Satisfy advances the plan with the histories of the requested scripts.
func (r *ScriptRequest) Satisfy(histories [][]model.TxRef) (Request, error) {
	if len(histories) != len(r.scripts) {
		return nil, fmt.Errorf("%w: %d histories for %d scripts", ErrPayloadLength, len(histories), len(r.scripts))
	}
	return r.satisfy(histories)
}

// ConftimeRequest asks for the confirmation time of every txid it yields.
type ConftimeRequest struct {
	txids   []chainhash.Hash
	satisfy func([]*model.ConfTime) (Request, error)
}

// NewConftimeRequest builds a confirmation time request.
func NewConftimeRequest(txids []chainhash.Hash, satisfy func([]*model.ConfTime) (Request, error)) *ConftimeRequest {
	return &ConftimeRequest{txids: txids, satisfy: satisfy}
}

func (*ConftimeRequest) Stage() Stage { return StageConftime }
func (*ConftimeRequest) sealed()      {}

// Len returns the number of txids requested.
func (r *ConftimeRequest) Len() int { return len(r.txids) }

// Txids yields the requested txids in order.
func (r *ConftimeRequest) Txids() iter.Seq[chainhash.Hash] { return slices.Values(r.txids) }

// Satisfy advances the plan; a nil entry means the transaction is unconfirmed.
func (r *ConftimeRequest) Satisfy(conftimes []*model.ConfTime) (Request, error) {
	if len(conftimes) != len(r.txids) {
		return nil, fmt.Errorf("%w: %d conftimes for %d txids", ErrPayloadLength, len(conftimes), len(r.txids))
	}
	return r.satisfy(conftimes)
}

// TxRequest asks for the full body of every txid it yields.
type TxRequest struct {
	txids   []chainhash.Hash
	satisfy func([]model.FullTx) (Request, error)
}

// NewTxRequest builds a transaction request.
func NewTxRequest(txids []chainhash.Hash, satisfy func([]model.FullTx) (Request, error)) *TxRequest {
	return &TxRequest{txids: txids, satisfy: satisfy}
}

func (*TxRequest) Stage() Stage { return StageTransactions }
func (*TxRequest) sealed()      {}

// Len returns the number of txids requested.
func (r *TxRequest) Len() int { return len(r.txids) }

// Txids yields the requested txids in order.
func (r *TxRequest) Txids() iter.Seq[chainhash.Hash] { return slices.Values(r.txids) }

// Satisfy advances the plan with the materialized transactions.
func (r *TxRequest) Satisfy(txs []model.FullTx) (Request, error) {
	if len(txs) != len(r.txids) {
		return nil, fmt.Errorf("%w: %d transactions for %d txids", ErrPayloadLength, len(txs), len(r.txids))
	}
	return r.satisfy(txs)
}

// FinishRequest ends the protocol and carries the batch to commit.
type FinishRequest struct {
	batch *model.BatchUpdate
}

// NewFinishRequest builds the terminal request.
func NewFinishRequest(batch *model.BatchUpdate) *FinishRequest {
	return &FinishRequest{batch: batch}
}

func (*FinishRequest) Stage() Stage { return StageFinish }
func (*FinishRequest) sealed()      {}

// Batch returns the accumulated update.
func (r *FinishRequest) Batch() *model.BatchUpdate { return r.batch }
