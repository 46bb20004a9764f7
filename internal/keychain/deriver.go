// Package keychain derives wallet output scripts from an account extended public key.
package keychain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/model"
)

var (
	// ErrUnknownNetwork is returned for a network name without chain parameters.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrNetworkMismatch is returned when the key was serialized for another network.
	ErrNetworkMismatch = errors.New("extended key is for another network")
	// ErrHardenedIndex is returned for indices a public key cannot derive.
	ErrHardenedIndex = errors.New("hardened index")
)

// Params returns the chain parameters for a network name.
func Params(network string) (*chaincfg.Params, error) {
	switch network {
	case "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}

// Deriver derives P2WPKH scripts at m/<keychain>/<index> below an account key.
type Deriver struct {
	params  *chaincfg.Params
	account *hdkeychain.ExtendedKey

	mu     sync.Mutex
	chains map[model.Keychain]*hdkeychain.ExtendedKey
}

// NewDeriver parses an account xpub. Private keys are neutered.
func NewDeriver(xpub string, params *chaincfg.Params) (*Deriver, error) {
	account, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("parse extended key: %w", err)
	}
	if !account.IsForNet(params) {
		return nil, fmt.Errorf("%w: want %s", ErrNetworkMismatch, params.Name)
	}
	if account.IsPrivate() {
		if account, err = account.Neuter(); err != nil {
			return nil, fmt.Errorf("neuter extended key: %w", err)
		}
	}
	return &Deriver{
		params:  params,
		account: account,
		chains:  make(map[model.Keychain]*hdkeychain.ExtendedKey, len(model.Keychains)),
	}, nil
}

// Address returns the P2WPKH address at index of keychain.
func (d *Deriver) Address(keychain model.Keychain, index uint32) (*btcutil.AddressWitnessPubKeyHash, error) {
	if index >= hdkeychain.HardenedKeyStart {
		return nil, fmt.Errorf("%w: %d", ErrHardenedIndex, index)
	}
	chain, err := d.chain(keychain)
	if err != nil {
		return nil, err
	}
	child, err := chain.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("derive %s/%d: %w", keychain, index, err)
	}
	pub, err := child.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("public key %s/%d: %w", keychain, index, err)
	}
	return btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), d.params)
}

// ScriptPubKey returns the output script at index of keychain.
func (d *Deriver) ScriptPubKey(keychain model.Keychain, index uint32) (model.Script, error) {
	addr, err := d.Address(keychain, index)
	if err != nil {
		return nil, err
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("script for %s: %w", addr, err)
	}
	return script, nil
}

func (d *Deriver) chain(keychain model.Keychain) (*hdkeychain.ExtendedKey, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if key, ok := d.chains[keychain]; ok {
		return key, nil
	}
	key, err := d.account.Derive(uint32(keychain))
	if err != nil {
		return nil, fmt.Errorf("derive %s chain: %w", keychain, err)
	}
	d.chains[keychain] = key
	return key, nil
}
