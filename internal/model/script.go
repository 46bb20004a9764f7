package model

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Script is a wallet-derived output script used as a lookup key.
type Script []byte

// Hash returns the script hash the way Esplora indexes it: sha256 of the script in reversed byte order, hex encoded.
func (s Script) Hash() string {
	return chainhash.Hash(sha256.Sum256(s)).String()
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}
