package bolt

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

var errMissingBody = errors.New("wallet tx without body")

type prevoutValue struct {
	Value  int64  `json:"value"`
	Script string `json:"script"`
}

type txValue struct {
	Tx       string          `json:"tx"`
	Prevouts []*prevoutValue `json:"prevouts"`
}

type confTimeValue struct {
	Height    uint32 `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

func encodeTx(tx *model.WalletTx) ([]byte, error) {
	if tx.Tx == nil {
		return nil, fmt.Errorf("%w: %s", errMissingBody, tx.Txid)
	}
	var buf bytes.Buffer
	if err := tx.Tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize tx %s: %w", tx.Txid, err)
	}

	v := txValue{
		Tx:       hex.EncodeToString(buf.Bytes()),
		Prevouts: make([]*prevoutValue, len(tx.Prevouts)),
	}
	for i, out := range tx.Prevouts {
		if out == nil {
			continue
		}
		v.Prevouts[i] = &prevoutValue{Value: out.Value, Script: hex.EncodeToString(out.PkScript)}
	}
	return json.Marshal(v)
}

func decodeTx(data []byte) (*wire.MsgTx, []*wire.TxOut, error) {
	var v txValue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, nil, err
	}
	raw, err := hex.DecodeString(v.Tx)
	if err != nil {
		return nil, nil, fmt.Errorf("decode tx hex: %w", err)
	}
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, nil, fmt.Errorf("deserialize tx: %w", err)
	}

	prevouts := make([]*wire.TxOut, len(v.Prevouts))
	for i, out := range v.Prevouts {
		if out == nil {
			continue
		}
		script, err := hex.DecodeString(out.Script)
		if err != nil {
			return nil, nil, fmt.Errorf("decode prevout %d script: %w", i, err)
		}
		prevouts[i] = wire.NewTxOut(out.Value, script)
	}
	return tx, prevouts, nil
}

func encodeConfTime(ct *model.ConfTime) ([]byte, error) {
	return json.Marshal(confTimeValue{Height: ct.Height, Timestamp: ct.Timestamp.Unix()})
}

func decodeConfTime(data []byte) (*model.ConfTime, error) {
	var v confTimeValue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &model.ConfTime{Height: v.Height, Timestamp: time.Unix(v.Timestamp, 0).UTC()}, nil
}
