package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// WalletTx is a transaction stored by the wallet.
type WalletTx struct {
	Txid     chainhash.Hash
	Tx       *wire.MsgTx
	Prevouts []*wire.TxOut
	ConfTime *ConfTime
}

// ConfTimeUpdate sets the confirmation time of a stored transaction; a nil ConfTime marks it unconfirmed.
type ConfTimeUpdate struct {
	Txid     chainhash.Hash
	ConfTime *ConfTime
}

// BatchUpdate is the result of one sync, committed to the wallet database in a single transaction.
type BatchUpdate struct {
	Transactions []WalletTx
	ConfTimes    []ConfTimeUpdate
	Removed      []chainhash.Hash
	LastUsed     map[Keychain]uint32
}
