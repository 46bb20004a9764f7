package model

import "fmt"

// Keychain selects the derivation branch of wallet scripts.
type Keychain uint8

const (
	External Keychain = iota
	Internal
)

// Keychains lists every keychain in discovery order.
var Keychains = []Keychain{External, Internal}

func (k Keychain) String() string {
	switch k {
	case External:
		return "external"
	case Internal:
		return "internal"
	default:
		return fmt.Sprintf("keychain(%d)", uint8(k))
	}
}
