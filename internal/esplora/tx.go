package esplora

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
)

// Tx is the transaction object returned by /tx/:txid and /scripthash/:hash/txs.
type Tx struct {
	Txid     string   `json:"txid"`
	Version  int32    `json:"version"`
	Locktime uint32   `json:"locktime"`
	Vin      []Vin    `json:"vin"`
	Vout     []Vout   `json:"vout"`
	Size     uint64   `json:"size"`
	Weight   uint64   `json:"weight"`
	Fee      uint64   `json:"fee"`
	Status   TxStatus `json:"status"`
}

// Vin is a transaction input with its spent output attached.
type Vin struct {
	Txid       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	Prevout    *Vout    `json:"prevout"`
	ScriptSig  string   `json:"scriptsig"`
	Witness    []string `json:"witness"`
	Sequence   uint32   `json:"sequence"`
	IsCoinbase bool     `json:"is_coinbase"`
}

// Vout is a transaction output.
type Vout struct {
	ScriptPubKey string `json:"scriptpubkey"`
	Value        uint64 `json:"value"`
}

// TxStatus is the confirmation status of a transaction.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *int64  `json:"block_height,omitempty"`
	BlockHash   *string `json:"block_hash,omitempty"`
	BlockTime   *int64  `json:"block_time,omitempty"`
}

// Record converts the response into a TxRecord.
func (t Tx) Record() (*model.TxRecord, error) {
	txid, err := chainhash.NewHashFromStr(t.Txid)
	if err != nil {
		return nil, fmt.Errorf("%w: txid %q: %v", ErrInvalidResponse, t.Txid, err)
	}

	status, err := t.Status.convert()
	if err != nil {
		return nil, fmt.Errorf("tx %s status: %w", t.Txid, err)
	}

	inputs := make([]model.TxInput, 0, len(t.Vin))
	for idx, vin := range t.Vin {
		in, err := vin.convert()
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d: %w", t.Txid, idx, err)
		}
		inputs = append(inputs, in)
	}

	outputs := make([]*wire.TxOut, 0, len(t.Vout))
	for idx, vout := range t.Vout {
		out, err := vout.convert()
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d: %w", t.Txid, idx, err)
		}
		outputs = append(outputs, out)
	}

	return &model.TxRecord{
		Txid:     *txid,
		Version:  t.Version,
		LockTime: t.Locktime,
		Inputs:   inputs,
		Outputs:  outputs,
		Fee:      t.Fee,
		Weight:   t.Weight,
		Status:   status,
	}, nil
}

func (s TxStatus) convert() (model.TxStatus, error) {
	status := model.TxStatus{Confirmed: s.Confirmed}
	if !s.Confirmed {
		return status, nil
	}
	if s.BlockHeight != nil {
		height, err := safe.Uint32(*s.BlockHeight)
		if err != nil {
			return status, fmt.Errorf("%w: block height: %v", ErrInvalidResponse, err)
		}
		status.BlockHeight = height
	}
	if s.BlockTime != nil {
		status.BlockTime = time.Unix(*s.BlockTime, 0).UTC()
	}
	if s.BlockHash != nil {
		hash, err := chainhash.NewHashFromStr(*s.BlockHash)
		if err != nil {
			return status, fmt.Errorf("%w: block hash %q: %v", ErrInvalidResponse, *s.BlockHash, err)
		}
		status.BlockHash = hash
	}
	return status, nil
}

func (v Vin) convert() (model.TxInput, error) {
	in := model.TxInput{
		Sequence:   v.Sequence,
		IsCoinbase: v.IsCoinbase,
	}

	prevHash, err := chainhash.NewHashFromStr(v.Txid)
	if err != nil {
		return in, fmt.Errorf("%w: prev txid %q: %v", ErrInvalidResponse, v.Txid, err)
	}
	in.PreviousOutPoint = *wire.NewOutPoint(prevHash, v.Vout)

	if in.SignatureScript, err = decodeHex(v.ScriptSig); err != nil {
		return in, fmt.Errorf("scriptsig: %w", err)
	}
	if len(v.Witness) > 0 {
		in.Witness = make(wire.TxWitness, 0, len(v.Witness))
		for _, item := range v.Witness {
			data, err := decodeHex(item)
			if err != nil {
				return in, fmt.Errorf("witness: %w", err)
			}
			in.Witness = append(in.Witness, data)
		}
	}
	if v.Prevout != nil && !v.IsCoinbase {
		if in.Prevout, err = v.Prevout.convert(); err != nil {
			return in, fmt.Errorf("prevout: %w", err)
		}
	}
	return in, nil
}

func (v Vout) convert() (*wire.TxOut, error) {
	script, err := decodeHex(v.ScriptPubKey)
	if err != nil {
		return nil, fmt.Errorf("scriptpubkey: %w", err)
	}
	value, err := safe.Amount(v.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: value: %v", ErrInvalidResponse, err)
	}
	return wire.NewTxOut(value, script), nil
}

func decodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return data, nil
}
