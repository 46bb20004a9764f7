package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxStatus is the confirmation state reported by the remote service.
type TxStatus struct {
	Confirmed   bool
	BlockHeight uint32
	BlockHash   *chainhash.Hash
	BlockTime   time.Time
}

// TxInput references a previous output. Prevout is nil for coinbase inputs.
type TxInput struct {
	PreviousOutPoint wire.OutPoint
	Prevout          *wire.TxOut
	SignatureScript  []byte
	Witness          wire.TxWitness
	Sequence         uint32
	IsCoinbase       bool
}

// TxRecord is a remote snapshot of one transaction. It is never mutated once fetched.
type TxRecord struct {
	Txid     chainhash.Hash
	Version  int32
	LockTime uint32
	Inputs   []TxInput
	Outputs  []*wire.TxOut
	Fee      uint64
	Weight   uint64
	Status   TxStatus
}

// Ref returns the discovery reference of the record.
func (r *TxRecord) Ref() TxRef {
	return TxRef{
		Txid:      r.Txid,
		Height:    r.Status.BlockHeight,
		Confirmed: r.Status.Confirmed,
	}
}

// ConfTime returns the confirmation time, or nil if the transaction is unconfirmed.
func (r *TxRecord) ConfTime() *ConfTime {
	if !r.Status.Confirmed {
		return nil
	}
	return &ConfTime{
		Height:    r.Status.BlockHeight,
		Timestamp: r.Status.BlockTime,
	}
}

// Prevouts returns the outputs spent by the transaction, aligned with its inputs.
func (r *TxRecord) Prevouts() []*wire.TxOut {
	prevouts := make([]*wire.TxOut, len(r.Inputs))
	for i, in := range r.Inputs {
		if in.IsCoinbase || in.Prevout == nil {
			continue
		}
		prevouts[i] = wire.NewTxOut(in.Prevout.Value, in.Prevout.PkScript)
	}
	return prevouts
}

// Materialize rebuilds the full transaction body.
func (r *TxRecord) Materialize() *wire.MsgTx {
	tx := wire.NewMsgTx(r.Version)
	tx.LockTime = r.LockTime
	for _, in := range r.Inputs {
		txIn := wire.NewTxIn(&in.PreviousOutPoint, in.SignatureScript, in.Witness)
		txIn.Sequence = in.Sequence
		tx.AddTxIn(txIn)
	}
	for _, out := range r.Outputs {
		tx.AddTxOut(wire.NewTxOut(out.Value, out.PkScript))
	}
	return tx
}

// TxRef is one entry of a script history: the txid and its block height when confirmed.
type TxRef struct {
	Txid      chainhash.Hash
	Height    uint32
	Confirmed bool
}

// ConfTime is the block a transaction was confirmed in.
type ConfTime struct {
	Height    uint32
	Timestamp time.Time
}

// FullTx is a materialized transaction with the outputs its inputs spend.
type FullTx struct {
	Prevouts []*wire.TxOut
	Tx       *wire.MsgTx
}
